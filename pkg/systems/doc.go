// Package systems implements illustrative game systems running under the
// same contract a user-authored system would use: combat resolution and
// generic interaction handling, both built on pkg/ecs's
// scheduler/command-buffer/event-queue primitives (Scheduler.Register,
// CommandBuffer.Despawn, EventQueue.Emit).
package systems
