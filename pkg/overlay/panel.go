package overlay

import (
	"github.com/Benjirez/archipack/pkg/geometry"
)

// Shortcut is a key binding listed in the feedback panel
type Shortcut struct {
	Key   string
	Label string
}

// FeedbackPanel is the instructions bar drawn at the bottom of the
// region: shortcuts first, then a title row.
type FeedbackPanel struct {
	cfg FeedbackConfig

	mainTitle    *Text
	title        *Text
	explanation  *Text
	shortcutArea *Polygon
	titleArea    *Polygon
	shortcuts    []*Text

	spacing geometry.Vector2
	margin  float64
	on      bool
}

// NewFeedbackPanel creates a disabled panel headed by title
func NewFeedbackPanel(title string, cfg FeedbackConfig) *FeedbackPanel {
	s := 0.5 * cfg.SizeShortcut
	return &FeedbackPanel{
		cfg:          cfg,
		mainTitle:    NewText(Dim2, title, cfg.SizeMain, cfg.ColourMain.NRGBA()),
		title:        NewText(Dim2, "", cfg.SizeTitle, cfg.ColourMain.NRGBA()),
		explanation:  NewText(Dim2, "", cfg.SizeShortcut, cfg.ColourMain.NRGBA()),
		shortcutArea: NewPolygon(Dim2, cfg.ShortcutArea.NRGBA()),
		titleArea:    NewPolygon(Dim2, cfg.TitleArea.NRGBA()),
		spacing:      geometry.NewVector2(s, s),
		margin:       cfg.Margin,
	}
}

func (p *FeedbackPanel) Enable()       { p.on = true }
func (p *FeedbackPanel) Disable()      { p.on = false }
func (p *FeedbackPanel) Enabled() bool { return p.on }

// Instructions lays the panel out, bottom to top, for the region width.
// The previous layout is discarded.
func (p *FeedbackPanel) Instructions(ctx *Context, title, explanation string, shortcuts []Shortcut) {
	w := ctx.Region.Width
	pos := geometry.NewVector2(p.margin+p.spacing.X, p.margin)
	p.shortcuts = make([]*Text, 0, 2*len(shortcuts))

	if len(shortcuts) > 0 {
		pos.Y += p.spacing.Y
	}

	addY := 0.0
	for _, sc := range shortcuts {
		key := NewText(Dim2, sc.Key+" : ", p.cfg.SizeShortcut, p.cfg.ColourKey.NRGBA())
		label := NewText(Dim2, sc.Label, p.cfg.SizeShortcut, p.cfg.ColourShortcut.NRGBA())
		ks := key.Size(ctx)
		ls := label.Size(ctx)
		space := ks.X + ls.X + p.spacing.X
		addY = ks.Y + p.spacing.Y
		if pos.X+space > w-2*p.margin {
			pos.Y += ks.Y + 2*p.spacing.Y
			pos.X = p.margin + p.spacing.X
		}
		key.Pos3D = pos.Vec3()
		pos.X += ks.X
		label.Pos3D = pos.Vec3()
		pos.X += ls.X + 2*p.spacing.X
		p.shortcuts = append(p.shortcuts, key, label)
	}

	if len(shortcuts) > 0 {
		pos.Y += addY + 0.5*p.spacing.Y
	}

	p.shortcutArea.SetPos([]geometry.Vector3{
		vec2(p.margin, p.margin),
		vec2(w-p.margin, p.margin),
		vec2(w-p.margin, pos.Y),
		vec2(p.margin, pos.Y),
	})

	if len(shortcuts) > 0 {
		pos.Y += 0.5 * p.spacing.Y
	}

	p.title.Label = " : " + title
	mts := p.mainTitle.Size(ctx)
	top := pos.Y + mts.Y + 2*p.spacing.Y
	p.titleArea.SetPos([]geometry.Vector3{
		vec2(p.margin, pos.Y),
		vec2(w-p.margin, pos.Y),
		vec2(w-p.margin, top),
		vec2(p.margin, top),
	})

	pos.Y += p.spacing.Y
	p.explanation.Label = explanation
	p.explanation.Pos3D = vec2(w-p.margin-p.spacing.X-p.explanation.Size(ctx).X, pos.Y)
	p.mainTitle.Pos3D = vec2(p.margin+p.spacing.X, pos.Y)
	p.title.Pos3D = vec2(p.margin+p.spacing.X+mts.X, pos.Y)
}

// Draw draws the panel when enabled, bottom to top
func (p *FeedbackPanel) Draw(ctx *Context) {
	if !p.on {
		return
	}
	p.shortcutArea.Draw(ctx, false)
	p.titleArea.Draw(ctx, false)
	p.mainTitle.Draw(ctx, false)
	p.title.Draw(ctx, false)
	p.explanation.Draw(ctx, false)
	for _, s := range p.shortcuts {
		s.Draw(ctx, false)
	}
}

// Shortcuts returns the key and label texts of the last layout
func (p *FeedbackPanel) Shortcuts() []*Text { return p.shortcuts }

func (p *FeedbackPanel) MainTitle() *Text { return p.mainTitle }

func (p *FeedbackPanel) Title() *Text { return p.title }

func (p *FeedbackPanel) Explanation() *Text { return p.explanation }

// Areas returns the shortcut and title backgrounds
func (p *FeedbackPanel) Areas() (shortcut, title *Polygon) {
	return p.shortcutArea, p.titleArea
}
