package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGUIArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantGUI bool
		want    guiArgs
	}{
		{name: "no arguments", args: nil, wantGUI: true},
		{name: "browse", args: []string{"browse"}, wantGUI: true},
		{name: "browse url", args: []string{"browse", "example.com"}, wantGUI: true, want: guiArgs{initialURL: "example.com"}},
		{
			name:    "browse incognito query",
			args:    []string{"browse", "--incognito", "hello world"},
			wantGUI: true,
			want:    guiArgs{initialURL: "hello world", incognito: true},
		},
		{name: "first positional wins", args: []string{"browse", "a.com", "b.com"}, wantGUI: true, want: guiArgs{initialURL: "a.com"}},
		{name: "browse help goes to cobra", args: []string{"browse", "--help"}, wantGUI: false},
		{name: "subcommand", args: []string{"config", "show"}, wantGUI: false},
		{name: "root help", args: []string{"--help"}, wantGUI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gui := parseGUIArgs(tt.args)
			assert.Equal(t, tt.wantGUI, gui)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuitOnSignal_PostsQuitToMainLoop(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	posted := make(chan func(), 1)
	quit := make(chan struct{}, 1)

	sigCh <- os.Interrupt
	quitOnSignal(context.Background(), sigCh, func() { quit <- struct{}{} }, func(fn func()) { posted <- fn })

	require.Len(t, posted, 1)
	assert.Empty(t, quit, "quit must only run from the main loop")

	(<-posted)()
	assert.Len(t, quit, 1)
}

func TestQuitOnSignal_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	quitOnSignal(ctx, make(chan os.Signal), func() { t.Fatal("quit called") }, func(fn func()) { fn() })
}
