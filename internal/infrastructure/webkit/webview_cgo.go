package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>
#include <gtk/gtk.h>

// burrow_new_web_view builds a WebView bound to a network session and a
// user content manager. Both properties are construct-only, so they must be
// set during g_object_new.
static inline WebKitWebView* burrow_new_web_view(
	WebKitNetworkSession* session,
	WebKitUserContentManager* ucm
) {
	return WEBKIT_WEB_VIEW(g_object_new(
		WEBKIT_TYPE_WEB_VIEW,
		"network-session", session,
		"user-content-manager", ucm,
		NULL
	));
}
*/
import "C"

import (
	"errors"
	"runtime"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var errWebViewConstruction = errors.New("webkit: failed to construct web view")

// newBoundWebView creates a WebView using session and ucm.
//
// gotk4-webkitgtk does not expose its wrapper constructor, so the Go struct
// hierarchy is assembled by hand around the new object.
func newBoundWebView(session *webkit.NetworkSession, ucm *webkit.UserContentManager) (*webkit.WebView, error) {
	if session == nil || ucm == nil {
		return nil, errWebViewConstruction
	}

	sessionNative := (*C.WebKitNetworkSession)(unsafe.Pointer(coreglib.InternObject(session).Native()))
	ucmNative := (*C.WebKitUserContentManager)(unsafe.Pointer(coreglib.InternObject(ucm).Native()))

	native := C.burrow_new_web_view(sessionNative, ucmNative)
	runtime.KeepAlive(session)
	runtime.KeepAlive(ucm)
	if native == nil {
		return nil, errWebViewConstruction
	}

	obj := coreglib.Take(unsafe.Pointer(native))

	widget := gtk.Widget{
		InitiallyUnowned: coreglib.InitiallyUnowned{
			Object: obj,
		},
		Object: obj,
		Accessible: gtk.Accessible{
			Object: obj,
		},
		Buildable: gtk.Buildable{
			Object: obj,
		},
		ConstraintTarget: gtk.ConstraintTarget{
			Object: obj,
		},
	}

	return &webkit.WebView{
		WebViewBase: webkit.WebViewBase{
			Widget: widget,
		},
	}, nil
}
