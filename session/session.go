// Package session ties one open drawing to its canvas host, undo
// history, and stroke recorder.
//
// Each project owns its state outright: there are no process-wide
// globals, so any number of drawings can be open at once without
// leaking brushes, seeds, or history between them. The session also
// enforces the engine's interaction rule that history navigation is
// rejected while a stroke is being recorded.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/history"
)

// Project is one open drawing: a canvas, its undo history, and the
// in-progress stroke state. Like the engine underneath, a Project is
// single-threaded; all calls must come from the thread that owns the
// canvas.
type Project struct {
	id        uuid.UUID
	name      string
	width     int
	height    int
	createdAt time.Time

	host     easel.CanvasHost
	tree     *history.Tree
	recorder *easel.StrokeRecorder
	brush    easel.BrushSettings
}

// Option configures a Project.
type Option func(*projectConfig)

type projectConfig struct {
	brush        easel.BrushSettings
	historyOpts  []history.Option
	recorderOpts []easel.RecorderOption
}

// WithBrush sets the project's starting brush.
func WithBrush(b easel.BrushSettings) Option {
	return func(c *projectConfig) { c.brush = b }
}

// WithHistoryOptions forwards options to the project's undo tree.
func WithHistoryOptions(opts ...history.Option) Option {
	return func(c *projectConfig) { c.historyOpts = append(c.historyOpts, opts...) }
}

// WithRecorderOptions forwards options to the project's stroke recorder.
func WithRecorderOptions(opts ...easel.RecorderOption) Option {
	return func(c *projectConfig) { c.recorderOpts = append(c.recorderOpts, opts...) }
}

// NewProject creates a project drawing to the given host.
func NewProject(name string, width, height int, host easel.CanvasHost, opts ...Option) *Project {
	cfg := projectConfig{brush: easel.DefaultBrush()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Project{
		id:        uuid.New(),
		name:      name,
		width:     width,
		height:    height,
		createdAt: time.Now(),
		host:      host,
		tree:      history.NewTree(host, cfg.historyOpts...),
		recorder:  easel.NewStrokeRecorder(cfg.recorderOpts...),
		brush:     cfg.brush,
	}
	easel.Logger().Info("session: project created",
		"id", p.id, "name", name, "size", [2]int{width, height})
	return p
}

// ID returns the project's unique identifier.
func (p *Project) ID() uuid.UUID { return p.id }

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Width returns the canvas width in pixels.
func (p *Project) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p *Project) Height() int { return p.height }

// CreatedAt returns when the project was created.
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// History returns the project's undo tree.
func (p *Project) History() *history.Tree { return p.tree }

// Host returns the project's canvas host.
func (p *Project) Host() easel.CanvasHost { return p.host }

// Brush returns the live brush settings.
func (p *Project) Brush() easel.BrushSettings { return p.brush }

// SetBrush changes the live brush. Takes effect on the next stroke;
// the active stroke, if any, keeps the settings it began with.
func (p *Project) SetBrush(b easel.BrushSettings) { p.brush = b }

// Drawing reports whether a stroke is currently in progress.
func (p *Project) Drawing() bool { return p.recorder.Active() }

// PointerDown starts a stroke: the recorder freezes the brush and draws
// a fresh seed, and the host renders the first stamp live.
func (p *Project) PointerDown(x, y, pressure float32) {
	p.recorder.Begin(p.brush, x, y, pressure)
	p.host.SetRandomSeed(p.recorder.Seed())
	p.host.SetBrush(p.brush)
	p.host.BeginStroke(x, y, pressure)
}

// PointerMove extends the active stroke; ignored when not drawing.
func (p *Project) PointerMove(x, y, pressure float32) {
	if !p.recorder.Active() {
		return
	}
	p.recorder.Add(x, y, pressure)
	p.host.AddStrokePoint(x, y, pressure)
}

// PointerUp finishes the stroke and commits it to history.
// Returns the new history node, or history.InvalidNode when no stroke
// was active or the stroke was empty.
func (p *Project) PointerUp(x, y, pressure float32) history.NodeID {
	if !p.recorder.Active() {
		return history.InvalidNode
	}
	p.recorder.Add(x, y, pressure)
	p.host.AddStrokePoint(x, y, pressure)
	p.host.EndStroke()
	return p.tree.RecordStroke(p.recorder.Finish())
}

// CancelStroke abandons the active stroke and re-renders the canvas at
// the current history state, wiping the abandoned paint.
func (p *Project) CancelStroke() {
	if !p.recorder.Active() {
		return
	}
	p.recorder.Cancel()
	p.host.EndStroke()
	p.tree.RestoreCurrent()
}

// Undo steps back one stroke. Rejected while drawing.
func (p *Project) Undo() bool {
	if p.recorder.Active() {
		return false
	}
	return p.tree.Undo()
}

// Redo re-applies the selected redo branch. Rejected while drawing.
func (p *Project) Redo() bool {
	if p.recorder.Active() {
		return false
	}
	return p.tree.Redo()
}

// SwitchBranch selects the redo branch to follow. Rejected while drawing.
func (p *Project) SwitchBranch(index int) bool {
	if p.recorder.Active() {
		return false
	}
	return p.tree.SwitchBranch(index)
}

// CanUndo reports whether undo is possible right now.
func (p *Project) CanUndo() bool {
	return !p.recorder.Active() && p.tree.CanUndo()
}

// CanRedo reports whether redo is possible right now.
func (p *Project) CanRedo() bool {
	return !p.recorder.Active() && p.tree.CanRedo()
}
