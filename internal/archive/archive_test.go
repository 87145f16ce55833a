package archive

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func sampleRun(id string, created time.Time) Run {
	return Run{
		ID:            id,
		CreatedAt:     created,
		Cells:         5,
		Rows:          3,
		InitialStates: "00100",
		RuleOutputs:   "01111111",
		Wolfram:       254,
		Generations:   []string{"00100", "01110", "01110"},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.SaveRun(ctx, sampleRun("early", time.Now())); err == nil {
		t.Fatal("expected error saving before Init")
	}
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := sampleRun("a", base)
	second := sampleRun("b", base.Add(time.Minute))
	for _, run := range []Run{first, second} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save %s: %v", run.ID, err)
		}
	}
	first.Generations[0] = "11111"

	loaded, ok, err := store.GetRun(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if loaded.Generations[0] != "00100" {
		t.Fatal("store aliases the caller's generations")
	}
	if _, ok, _ := store.GetRun(ctx, "missing"); ok {
		t.Fatal("found a run that was never saved")
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := []string{runs[0].ID, runs[1].ID}
	if !slices.Equal(ids, []string{"b", "a"}) {
		t.Fatalf("list order = %v, expected newest first", ids)
	}
	if runs[0].Generations != 3 || runs[0].Wolfram != 254 {
		t.Fatalf("unexpected summary %+v", runs[0])
	}
}

func TestCodecVersionCheck(t *testing.T) {
	payload, err := EncodeRun(sampleRun("x", time.Unix(0, 0).UTC()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	run, err := DecodeRun(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if run.SchemaVersion != CurrentSchemaVersion || run.ID != "x" || len(run.Generations) != 3 {
		t.Fatalf("unexpected run %+v", run)
	}

	if _, err := DecodeRun([]byte(`{"schema_version": 99, "codec_version": 1}`)); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("err = %v, expected ErrVersionMismatch", err)
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore("memory", "")
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("store = %T", store)
	}
	if err := CloseIfSupported(store); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := NewStore("postgres", ""); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b || len(a) != 36 {
		t.Fatalf("ids %q and %q", a, b)
	}
}
