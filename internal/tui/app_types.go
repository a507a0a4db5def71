package tui

// view is the current screen. The two views are mutually exclusive; the popup
// always opens on the form, and no view state survives across runs.
type view int

const (
	viewForm view = iota
	viewList
)

// notifyExpireMsg clears the status line when its seq still matches the call
// that scheduled it. A newer notify bumps the seq, so a stale timer firing
// must not clear the newer message.
type notifyExpireMsg struct{ seq int }

type notifyKind int

const (
	notifySuccess notifyKind = iota
	notifyError
)

// confirmKind identifies which destructive action is awaiting confirmation.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmClearAll
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// formField indexes the four text inputs, in submit order.
type formField int

const (
	fieldEmployerName formField = iota
	fieldEmployerRole
	fieldEmailID
	fieldJobLink

	formFieldCount
)
