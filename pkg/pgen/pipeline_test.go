package pgen

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/rogueforge/pkg/randstream"
)

type counter struct{ N int }

func (c counter) Info() ArtifactInfo { return ArtifactInfo{RoomCount: c.N} }

func TestPipeline_PipeComposesSequentially(t *testing.T) {
	inc := Pass[counter, counter]{
		ID:  "increment",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{N: in.N + 1}, nil },
	}

	pipeline := Pipe(Pipe(NewPipeline[counter]("test"), inc), inc)
	ctx := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, true)

	result := Execute(pipeline, counter{N: 0}, ctx)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Artifact.N != 2 {
		t.Fatalf("Artifact.N = %d, want 2", result.Artifact.N)
	}
	if len(result.Metrics) != 2 {
		t.Fatalf("len(Metrics) = %d, want 2", len(result.Metrics))
	}
}

func TestPipeline_WhenFalseLeavesArtifactIdentical(t *testing.T) {
	mutate := Pass[counter, counter]{
		ID:  "mutate",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{N: in.N + 100}, nil },
	}

	pipeline := When(NewPipeline[counter]("test"), func(c counter) bool { return false }, mutate)
	ctx := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, false)

	result := Execute(pipeline, counter{N: 5}, ctx)
	if result.Artifact.N != 5 {
		t.Fatalf("When(false, ...) mutated the artifact: got %d, want 5", result.Artifact.N)
	}
}

func TestPipeline_WhenTrueRunsPass(t *testing.T) {
	mutate := Pass[counter, counter]{
		ID:  "mutate",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{N: in.N + 100}, nil },
	}

	pipeline := When(NewPipeline[counter]("test"), func(c counter) bool { return true }, mutate)
	ctx := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, false)

	result := Execute(pipeline, counter{N: 5}, ctx)
	if result.Artifact.N != 105 {
		t.Fatalf("When(true, ...) = %d, want 105", result.Artifact.N)
	}
}

func TestPipeline_FailingPassCarriesPassID(t *testing.T) {
	failing := Pass[counter, counter]{
		ID:  "boom",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{}, errors.New("kaboom") },
	}

	pipeline := Pipe(NewPipeline[counter]("test"), failing)
	ctx := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, false)

	result := Execute(pipeline, counter{N: 1}, ctx)
	if result.Err == nil {
		t.Fatal("expected an error")
	}
	var passErr *PassError
	if !errors.As(result.Err, &passErr) {
		t.Fatalf("expected *PassError, got %T", result.Err)
	}
	if passErr.PassID != "boom" {
		t.Fatalf("PassID = %q, want %q", passErr.PassID, "boom")
	}
}

func TestPipeline_SnapshotsOptIn(t *testing.T) {
	inc := Pass[counter, counter]{
		ID:  "inc",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{N: in.N + 1}, nil },
	}
	pipeline := Pipe(NewPipeline[counter]("test"), inc)

	ctxNoSnap := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, false)
	r1 := Execute(pipeline, counter{}, ctxNoSnap)
	if len(r1.Snapshots) != 0 {
		t.Fatalf("expected no snapshots when disabled, got %d", len(r1.Snapshots))
	}

	ctxSnap := NewContext(randstream.NewSeedBundle(1), nil, nil, nil, true, false)
	r2 := Execute(pipeline, counter{}, ctxSnap)
	if len(r2.Snapshots) != 1 {
		t.Fatalf("expected 1 snapshot when enabled, got %d", len(r2.Snapshots))
	}
}

func TestExecuteMany_RunsIndependentContextsConcurrently(t *testing.T) {
	inc := Pass[counter, counter]{
		ID:  "inc",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{N: in.N + 1}, nil },
	}
	pipeline := Pipe(NewPipeline[counter]("test"), inc)

	ins := []counter{{N: 0}, {N: 10}, {N: 20}}
	ctxs := make([]*Context, len(ins))
	for i := range ctxs {
		ctxs[i] = NewContext(randstream.NewSeedBundle(uint64(i)), nil, nil, nil, false, false)
	}

	results, err := ExecuteMany(context.Background(), pipeline, ins, ctxs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 11, 21}
	for i, r := range results {
		if r.Artifact.N != want[i] {
			t.Fatalf("results[%d].Artifact.N = %d, want %d", i, r.Artifact.N, want[i])
		}
	}
}

func TestExecuteMany_PropagatesFirstFailure(t *testing.T) {
	failing := Pass[counter, counter]{
		ID:  "boom",
		Run: func(in counter, ctx *Context) (counter, error) { return counter{}, errors.New("kaboom") },
	}
	pipeline := Pipe(NewPipeline[counter]("test"), failing)

	ins := []counter{{N: 0}, {N: 1}}
	ctxs := []*Context{
		NewContext(randstream.NewSeedBundle(1), nil, nil, nil, false, false),
		NewContext(randstream.NewSeedBundle(2), nil, nil, nil, false, false),
	}

	if _, err := ExecuteMany(context.Background(), pipeline, ins, ctxs); err == nil {
		t.Fatal("expected an error from a failing run")
	}
}

func TestExecuteMany_PanicsOnMismatchedLengths(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on mismatched input/context lengths")
		}
	}()
	pipeline := NewPipeline[counter]("test")
	_, _ = ExecuteMany(context.Background(), pipeline, []counter{{N: 0}}, nil)
}
