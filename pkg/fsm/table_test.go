package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type lightColor int

const (
	red lightColor = iota
	green
	yellow
)

func TestTableMachineCyclesThroughClosedSet(t *testing.T) {
	t.Parallel()

	m := NewTable[lightColor, int, string](red).
		Handle(red, func(in int) (string, lightColor, bool) {
			return "stop", green, true
		}).
		Handle(green, func(in int) (string, lightColor, bool) {
			return "go", yellow, true
		}).
		Handle(yellow, func(in int) (string, lightColor, bool) {
			return "slow", red, true
		}).
		Start()

	require.Equal(t, Running, m.Status())
	require.Equal(t, red, m.Current())

	expected := []struct {
		out  string
		next lightColor
	}{
		{"stop", green},
		{"go", yellow},
		{"slow", red},
		{"stop", green},
	}
	for _, step := range expected {
		out, ok := m.Run(0)
		require.True(t, ok)
		require.Equal(t, step.out, out)
		require.Equal(t, step.next, m.Current())
	}
}

func TestTableMachineHooksRunOnTransitions(t *testing.T) {
	t.Parallel()

	log := &journal{}
	m := NewTable[lightColor, int, string](red).
		Handle(red, func(in int) (string, lightColor, bool) {
			return "", green, true
		}).
		Handle(green, func(in int) (string, lightColor, bool) {
			return "", green, in < 10 // large input halts
		}).
		OnEnter(red, func() { log.add("red.enter") }).
		OnExit(red, func() { log.add("red.exit") }).
		OnEnter(green, func() { log.add("green.enter") }).
		OnExit(green, func() { log.add("green.exit") })

	m.Start()
	m.Run(0)  // red → green
	m.Run(1)  // stays green, no hooks
	m.Run(99) // halts, green exits

	require.Equal(t, []string{
		"red.enter",
		"red.exit",
		"green.enter",
		"green.exit",
	}, log.entries)
	require.Equal(t, Halted, m.Status())
}

func TestTableMachineHaltsOnHandlerRequest(t *testing.T) {
	t.Parallel()

	m := NewTable[string, int, int]("only").
		Handle("only", func(in int) (int, string, bool) {
			return in * 2, "only", in < 3
		}).
		Start()

	out, ok := m.Run(1)
	require.True(t, ok)
	require.Equal(t, 2, out)

	// Halting input still yields this step's output.
	out, ok = m.Run(5)
	require.True(t, ok)
	require.Equal(t, 10, out)
	require.Equal(t, Halted, m.Status())

	_, ok = m.Run(1)
	require.False(t, ok)
}

func TestTableMachineMissingHandlerHalts(t *testing.T) {
	t.Parallel()

	m := NewTable[string, int, string]("start").
		Handle("start", func(in int) (string, string, bool) {
			return "leap", "nowhere", true
		}).
		Start()

	out, ok := m.Run(0)
	require.True(t, ok)
	require.Equal(t, "leap", out)

	_, ok = m.Run(0)
	require.False(t, ok)
	require.Equal(t, Halted, m.Status())
}

func TestTableMachineRunBeforeStart(t *testing.T) {
	t.Parallel()

	m := NewTable[string, int, string]("idle")

	out, ok := m.Run(1)
	require.False(t, ok)
	require.Equal(t, "", out)
	require.Equal(t, Halted, m.Status())
}

func TestTableMachineStartIsIdempotent(t *testing.T) {
	t.Parallel()

	entered := 0
	m := NewTable[string, int, string]("idle").
		OnEnter("idle", func() { entered++ })

	m.Start()
	m.Start()

	require.Equal(t, 1, entered)
}
