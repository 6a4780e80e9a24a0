package booking

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// ParseStatus is case-insensitive and returns the canonical form.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid booking status %q", s)
}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocking statuses hold the trainer's time window.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

type Actor int

const (
	ActorNone Actor = iota
	ActorBooker
	ActorTrainer
)

type edge struct {
	from, to Status
}

// transitions lists every allowed edge and who may drive it.
var transitions = map[edge][]Actor{
	{StatusPending, StatusConfirmed}:   {ActorTrainer},
	{StatusPending, StatusCancelled}:   {ActorTrainer, ActorBooker},
	{StatusConfirmed, StatusCompleted}: {ActorTrainer},
	{StatusConfirmed, StatusCancelled}: {ActorTrainer, ActorBooker},
}

// CanTransition reports whether actor may move a booking from -> to.
func CanTransition(from, to Status, actor Actor) bool {
	for _, a := range transitions[edge{from, to}] {
		if a == actor {
			return true
		}
	}
	return false
}
