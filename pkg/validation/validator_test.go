package validation

import (
	"context"
	"testing"

	"github.com/dshills/rogueforge/pkg/generate"
)

func TestDefaultValidator_Validate_Passes(t *testing.T) {
	d := threeRoomChain()
	cfg := generate.DefaultConfig(d.Width, d.Height)
	v := NewValidator()
	report, err := v.Validate(context.Background(), d, cfg)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !report.Passed {
		t.Errorf("expected report to pass, errors: %v", report.Errors)
	}
	if report.Metrics == nil {
		t.Error("expected metrics to be populated")
	}
}

func TestDefaultValidator_Validate_FailsOnOverlap(t *testing.T) {
	d := threeRoomChain()
	d.Rooms[1].Bounds = d.Rooms[0].Bounds
	cfg := generate.DefaultConfig(d.Width, d.Height)
	v := NewValidator()
	report, err := v.Validate(context.Background(), d, cfg)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if report.Passed {
		t.Error("expected report to fail on overlapping rooms")
	}
	if len(GetFailedConstraints(report)) == 0 {
		t.Error("expected at least one failed hard constraint")
	}
}

func TestDefaultValidator_Validate_NilDungeon(t *testing.T) {
	v := NewValidator()
	_, err := v.Validate(context.Background(), nil, generate.DefaultConfig(40, 40))
	if err == nil {
		t.Error("expected error for nil dungeon")
	}
}

func TestDefaultValidator_Validate_CancelledContext(t *testing.T) {
	d := threeRoomChain()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := NewValidator()
	_, err := v.Validate(ctx, d, generate.DefaultConfig(d.Width, d.Height))
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
