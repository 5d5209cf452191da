package layout

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
)

// Compile-time interface checks.
var (
	_ BoxWidget         = (*gtkBox)(nil)
	_ LabelWidget       = (*gtkLabel)(nil)
	_ ButtonWidget      = (*gtkButton)(nil)
	_ ProgressBarWidget = (*gtkProgressBar)(nil)
	_ WidgetFactory     = (*GtkWidgetFactory)(nil)
)

// gtkWidget implements the Widget methods shared by every wrapper.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)       { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool               { return w.inner.IsVisible() }
func (w *gtkWidget) SetCanFocus(canFocus bool)     { w.inner.SetCanFocus(canFocus) }
func (w *gtkWidget) SetCanTarget(canTarget bool)   { w.inner.SetCanTarget(canTarget) }
func (w *gtkWidget) SetHexpand(expand bool)        { w.inner.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)        { w.inner.SetVExpand(expand) }
func (w *gtkWidget) SetHalign(align gtk.Align)     { w.inner.SetHAlign(align) }
func (w *gtkWidget) SetValign(align gtk.Align)     { w.inner.SetVAlign(align) }
func (w *gtkWidget) AddCssClass(class string)      { w.inner.AddCSSClass(class) }
func (w *gtkWidget) RemoveCssClass(class string)   { w.inner.RemoveCSSClass(class) }
func (w *gtkWidget) HasCssClass(class string) bool { return w.inner.HasCSSClass(class) }
func (w *gtkWidget) SetTooltipText(text string)    { w.inner.SetTooltipText(text) }
func (w *gtkWidget) GtkWidget() gtk.Widgetter      { return w.inner }

// gtkBox wraps gtk.Box to implement BoxWidget.
type gtkBox struct {
	gtkWidget
	box *gtk.Box
}

func (b *gtkBox) Append(child Widget) {
	if child == nil {
		return
	}
	b.box.Append(child.GtkWidget())
}

func (b *gtkBox) Remove(child Widget) {
	if child == nil {
		return
	}
	b.box.Remove(child.GtkWidget())
}

func (b *gtkBox) SetSpacing(spacing int) { b.box.SetSpacing(spacing) }

// gtkLabel wraps gtk.Label to implement LabelWidget.
type gtkLabel struct {
	gtkWidget
	label *gtk.Label
}

func (l *gtkLabel) SetText(text string)         { l.label.SetText(text) }
func (l *gtkLabel) GetText() string             { return l.label.Text() }
func (l *gtkLabel) SetMaxWidthChars(nChars int) { l.label.SetMaxWidthChars(nChars) }
func (l *gtkLabel) SetXalign(xalign float32)    { l.label.SetXAlign(xalign) }

func (l *gtkLabel) SetEllipsize(mode EllipsizeMode) {
	l.label.SetEllipsize(pango.EllipsizeMode(mode))
}

// gtkButton wraps gtk.Button to implement ButtonWidget.
type gtkButton struct {
	gtkWidget
	button *gtk.Button
}

func (b *gtkButton) SetHasFrame(hasFrame bool) { b.button.SetHasFrame(hasFrame) }

func (b *gtkButton) ConnectClicked(callback func()) uint {
	return uint(b.button.ConnectClicked(callback))
}

func (b *gtkButton) DisconnectClicked(handle uint) {
	if handle == 0 {
		return
	}
	b.button.HandlerDisconnect(coreglib.SignalHandle(handle))
}

// gtkProgressBar wraps gtk.ProgressBar to implement ProgressBarWidget.
type gtkProgressBar struct {
	gtkWidget
	bar *gtk.ProgressBar
}

func (p *gtkProgressBar) SetFraction(fraction float64) { p.bar.SetFraction(fraction) }
func (p *gtkProgressBar) GetFraction() float64         { return p.bar.Fraction() }

// GtkWidgetFactory creates real GTK widgets.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory returns a factory producing GTK-backed widgets.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

func (*GtkWidgetFactory) NewBox(orientation Orientation, spacing int) BoxWidget {
	box := gtk.NewBox(orientation, spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: &box.Widget}, box: box}
}

func (*GtkWidgetFactory) NewLabel(text string) LabelWidget {
	label := gtk.NewLabel(text)
	return &gtkLabel{gtkWidget: gtkWidget{inner: &label.Widget}, label: label}
}

func (*GtkWidgetFactory) NewButtonFromIcon(iconName string) ButtonWidget {
	button := gtk.NewButtonFromIconName(iconName)
	return &gtkButton{gtkWidget: gtkWidget{inner: &button.Widget}, button: button}
}

func (*GtkWidgetFactory) NewProgressBar() ProgressBarWidget {
	bar := gtk.NewProgressBar()
	return &gtkProgressBar{gtkWidget: gtkWidget{inner: &bar.Widget}, bar: bar}
}
