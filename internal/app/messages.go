package app

import (
	"github.com/chmouel/commitview/internal/models"
	"github.com/chmouel/commitview/internal/render"
)

// commitLoadedMsg carries a freshly parsed and projected commit.
type commitLoadedMsg struct {
	rev      string
	info     *models.CommitInfo
	overview *models.CommitOverview
	rendered *render.RenderModel
}

// errMsg reports a failed load; the panel shows the error instead of
// partially rendered output.
type errMsg struct {
	err error
}

// gitChangedMsg signals that the watched repository changed on disk.
type gitChangedMsg struct{}
