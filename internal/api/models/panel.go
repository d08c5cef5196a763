package models

import (
	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/jroosing/proxypanel/internal/panel"
)

// PageResponse reports the active page after activation.
type PageResponse struct {
	Page string `json:"page"`
}

// LiveRequest flips a view's live toggle. Enabled is a pointer so that
// an absent field fails binding instead of silently disabling.
type LiveRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// LiveResponse reports a view's toggle state after the change.
type LiveResponse struct {
	View    string `json:"view"`
	Enabled bool   `json:"enabled"`
}

// ViewResponse wraps a view's rendered state.
type ViewResponse struct {
	panel.ViewState
}

// StatusViewResponse wraps the rendered status panel.
type StatusViewResponse struct {
	panel.StatusState
}

// NoticesResponse lists the currently visible notices.
type NoticesResponse struct {
	Notices []notify.Notice `json:"notices"`
}

// ControlResponse reports the outcome of a proxy start/stop action.
type ControlResponse struct {
	Message string `json:"message"`
	Running bool   `json:"running"`
	Port    int    `json:"port,omitempty"`
}

// DomainRequest adds a domain to the block list.
type DomainRequest struct {
	Domain string `json:"domain" binding:"required"`
}

// RemoveDomainRequest removes a domain from the block list. Confirm is
// the explicit user confirmation naming the domain; without it the
// removal is cancelled and no service request is made.
type RemoveDomainRequest struct {
	Domain  string `json:"domain" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// RemoveDomainResponse reports whether the removal went through.
type RemoveDomainResponse struct {
	Status  string `json:"status"`
	Removed bool   `json:"removed"`
}
