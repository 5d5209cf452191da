package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/burrow/internal/ui/component"
	"github.com/bnema/burrow/internal/ui/layout"
	"github.com/bnema/burrow/internal/ui/layout/mocks"
)

type tabLabelMocks struct {
	factory *mocks.MockWidgetFactory
	box     *mocks.MockBoxWidget
	label   *mocks.MockLabelWidget
	button  *mocks.MockButtonWidget
}

func expectTabLabel(t *testing.T, text string) tabLabelMocks {
	t.Helper()

	m := tabLabelMocks{
		factory: mocks.NewMockWidgetFactory(t),
		box:     mocks.NewMockBoxWidget(t),
		label:   mocks.NewMockLabelWidget(t),
		button:  mocks.NewMockButtonWidget(t),
	}

	m.factory.EXPECT().NewBox(layout.OrientationHorizontal, 4).Return(m.box).Once()
	m.box.EXPECT().AddCssClass("tab-label").Once()

	m.factory.EXPECT().NewLabel(text).Return(m.label).Once()
	m.label.EXPECT().SetMaxWidthChars(20).Once()
	m.label.EXPECT().SetEllipsize(layout.EllipsizeEnd).Once()
	m.label.EXPECT().AddCssClass("tab-title").Once()

	m.factory.EXPECT().NewButtonFromIcon("window-close-symbolic").Return(m.button).Once()
	m.button.EXPECT().SetHasFrame(false).Once()
	m.button.EXPECT().SetCanFocus(false).Once()
	m.button.EXPECT().SetTooltipText("Close Tab").Once()
	m.button.EXPECT().AddCssClass("tab-close-button").Once()

	m.box.EXPECT().Append(m.label).Once()
	m.box.EXPECT().Append(m.button).Once()

	return m
}

func TestNewTabLabel_CloseButtonInvokesCallback(t *testing.T) {
	m := expectTabLabel(t, "Loading...")

	var clicked func()
	m.button.EXPECT().ConnectClicked(mock.Anything).
		Run(func(cb func()) { clicked = cb }).
		Return(uint(7)).Once()

	closed := 0
	tl := component.NewTabLabel(m.factory, "Loading...", func() { closed++ })
	require.NotNil(t, tl)
	require.NotNil(t, clicked)

	clicked()
	assert.Equal(t, 1, closed)
	assert.Same(t, m.box, tl.Widget())

	m.button.EXPECT().DisconnectClicked(uint(7)).Once()
	tl.Destroy()
	tl.Destroy()
}

func TestNewTabLabel_WithoutCallbackConnectsNothing(t *testing.T) {
	m := expectTabLabel(t, "Example")

	tl := component.NewTabLabel(m.factory, "Example", nil)
	tl.Destroy()

	m.button.AssertNotCalled(t, "ConnectClicked", mock.Anything)
}

func TestTabLabel_SetText(t *testing.T) {
	m := expectTabLabel(t, "Loading...")
	m.button.EXPECT().ConnectClicked(mock.Anything).Return(uint(1)).Once()

	tl := component.NewTabLabel(m.factory, "Loading...", func() {})

	m.label.EXPECT().SetText("Example Domain").Once()
	m.label.EXPECT().GetText().Return("Example Domain").Once()

	tl.SetText("Example Domain")
	assert.Equal(t, "Example Domain", tl.Text())
}
