package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"eca/internal/app"
	"eca/internal/archive"
	"eca/internal/config"
	"eca/internal/elementary"
	"eca/internal/render"
	"eca/internal/sweep"
)

const timeLayout = "%Y-%m-%d %H:%M:%S"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:], out)
	case "sweep":
		return runSweep(ctx, args[1:], out)
	case "runs":
		return runRuns(ctx, args[1:], out)
	case "show":
		return runShow(ctx, args[1:], out)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: ecactl <run|sweep|runs|show> [flags]", msg)
}

// requirePersistent rejects backends that do not outlive one invocation.
func requirePersistent(kind string) error {
	if kind == "" || kind == "memory" {
		return errors.New("the memory store does not persist between ecactl invocations; rebuild with -tags sqlite and use -store sqlite")
	}
	return nil
}

func openStore(ctx context.Context, kind, path string) (archive.Store, error) {
	if err := requirePersistent(kind); err != nil {
		return nil, err
	}
	store, err := archive.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = archive.CloseIfSupported(store)
		return nil, err
	}
	return store, nil
}

// glyphsFor picks block glyphs when out is an interactive terminal.
func glyphsFor(out io.Writer, mode string) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid -glyphs %q: want auto|on|off", mode)
	}
}

func runRun(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	settingsFlags := config.NewFlags()
	settingsFlags.Bind(fs)
	glyphs := fs.String("glyphs", "auto", "draw cells as block glyphs: auto|on|off")
	numbers := fs.Bool("numbers", false, "prefix each line with its generation")
	quiet := fs.Bool("quiet", false, "do not print generations")
	pngPath := fs.String("png", "", "write the strip to this PNG file")
	width := fs.Int("width", 0, "PNG width in pixels (defaults to one pixel per cell)")
	height := fs.Int("height", 0, "PNG height in pixels (defaults to one pixel per row)")
	workers := fs.Int("workers", 1, "goroutines used to compute wide rows")
	storeKind := fs.String("store", "", "record the run in this backend (sqlite builds only): sqlite")
	dbPath := fs.String("db-path", "eca.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := settingsFlags.Settings(fs)
	if err != nil {
		return err
	}
	if *storeKind != "" {
		if err := requirePersistent(*storeKind); err != nil {
			return err
		}
	}

	player := app.NewPlayerWithAutomaton(elementary.New(elementary.WithWorkers(*workers)))
	if !*quiet {
		useGlyphs, err := glyphsFor(out, *glyphs)
		if err != nil {
			return err
		}
		text := render.NewTextRenderer(out, useGlyphs)
		if *numbers {
			text.WithNumbers()
		}
		player.AddRenderer(text)
	}
	var img *render.ImageRenderer
	if *pngPath != "" {
		img = render.NewImageRenderer(settings.Cells, settings.Rows, render.DefaultPalette())
		player.AddRenderer(img)
	}
	if err := player.Load(settings); err != nil {
		return err
	}
	var recorder *archive.Recorder
	if *storeKind != "" {
		recorder = archive.NewRecorder(settings, player.Rule())
		player.AddRenderer(recorder)
	}

	start := time.Now()
	if err := player.RunAll(ctx); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if img != nil {
		if err := writePNG(*pngPath, img, *width, *height); err != nil {
			return err
		}
	}
	if recorder != nil {
		store, err := openStore(ctx, *storeKind, *dbPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = archive.CloseIfSupported(store)
		}()
		rec := recorder.Run()
		if err := store.SaveRun(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved run %s store=%s\n", rec.ID, *storeKind)
	}
	fmt.Fprintf(os.Stderr, "%s: %s generations of %s cells in %s\n",
		player.Rule(), humanize.Comma(int64(settings.Rows)), humanize.Comma(int64(settings.Cells)), elapsed.Round(time.Microsecond))
	return nil
}

func writePNG(path string, img *render.ImageRenderer, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := img.WritePNG(f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func runSweep(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	settingsFlags := config.NewFlags()
	settingsFlags.Bind(fs)
	workers := fs.Int("workers", 0, "rules evaluated concurrently (0 uses every CPU)")
	top := fs.Int("top", 0, "only print the first N ranked rules (0 prints all)")
	rank := fs.Bool("rank", true, "order rules by settledness and density")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := settingsFlags.Settings(fs)
	if err != nil {
		return err
	}
	initial, err := settings.InitialRow()
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := sweep.Run(ctx, initial, settings.Rows, sweep.AllRules(), *workers)
	if err != nil {
		return err
	}
	if *rank {
		results = sweep.Rank(results)
	}
	if *top > 0 && *top < len(results) {
		results = results[:*top]
	}

	fmt.Fprintf(out, "%-5s %-9s %-8s %-8s %-6s %s\n", "rule", "table", "died_at", "cycle", "alive", "density")
	for _, res := range results {
		died := "-"
		if res.DiedAt >= 0 {
			died = humanize.Comma(int64(res.DiedAt))
		}
		cycle := "-"
		if res.Settled() {
			cycle = fmt.Sprintf("%d+%d", res.CycleStart, res.Period)
		}
		fmt.Fprintf(out, "%-5d %-9s %-8s %-8s %-6s %.4f\n",
			res.Rule, elementary.RuleFromWolfram(res.Rule).Outputs(), died, cycle, humanize.Comma(int64(res.FinalAlive)), res.Density)
	}
	total := int64(len(sweep.AllRules())) * int64(settings.Rows) * int64(settings.Cells)
	fmt.Fprintf(os.Stderr, "swept 256 rules, %s cell updates in %s\n", humanize.Comma(total), time.Since(start).Round(time.Millisecond))
	return nil
}

func runRuns(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend (sqlite builds only): sqlite")
	dbPath := fs.String("db-path", "eca.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to list (0 lists all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	if *limit > 0 && len(runs) > *limit {
		runs = runs[:*limit]
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s (%s)  rule=%d cells=%s rows=%s generations=%s\n",
			r.ID,
			strftime.Format(timeLayout, r.CreatedAt.Local()),
			humanize.Time(r.CreatedAt),
			r.Wolfram,
			humanize.Comma(int64(r.Cells)),
			humanize.Comma(int64(r.Rows)),
			humanize.Comma(int64(r.Generations)),
		)
	}
	return nil
}

func runShow(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend (sqlite builds only): sqlite")
	dbPath := fs.String("db-path", "eca.db", "sqlite database path")
	id := fs.String("id", "", "run id")
	glyphs := fs.String("glyphs", "auto", "draw cells as block glyphs: auto|on|off")
	numbers := fs.Bool("numbers", false, "prefix each line with its generation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("show requires -id")
	}

	store, err := openStore(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()

	rec, ok, err := store.GetRun(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", *id)
	}

	fmt.Fprintf(out, "run %s recorded %s\n", rec.ID, strftime.Format(timeLayout, rec.CreatedAt.Local()))
	fmt.Fprintf(out, "rule %d (%s) cells=%d rows=%d\n", rec.Wolfram, rec.RuleOutputs, rec.Cells, rec.Rows)
	useGlyphs, err := glyphsFor(out, *glyphs)
	if err != nil {
		return err
	}
	text := render.NewTextRenderer(out, useGlyphs)
	if *numbers {
		text.WithNumbers()
	}
	for g, line := range rec.Generations {
		row, err := elementary.ParseRow(line)
		if err != nil {
			return fmt.Errorf("generation %d: %w", g, err)
		}
		if err := text.RenderRow(g, row); err != nil {
			return err
		}
	}
	return nil
}
