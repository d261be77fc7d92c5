package app

import (
	"context"
	"fmt"

	"github.com/chmouel/commitview/internal/git"
	"github.com/chmouel/commitview/internal/models"
	"github.com/chmouel/commitview/internal/parse"
	"github.com/chmouel/commitview/internal/render"
)

// LoadCommit runs the show and diffstat commands for rev, parses both, and
// projects them into a RenderModel. It is the single pipeline behind both
// the TUI and plain-output modes.
func LoadCommit(ctx context.Context, svc *git.Service, rev string) (*models.CommitInfo, *models.CommitOverview, *render.RenderModel, error) {
	showLines, err := svc.ShowCommit(ctx, rev)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading commit %s: %w", rev, err)
	}
	statLines, err := svc.ShowStat(ctx, rev)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading diffstat for %s: %w", rev, err)
	}

	info, err := parse.ParseCommitInfo(showLines)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing commit %s: %w", rev, err)
	}
	overview := parse.ParseOverview(statLines)

	rendered, err := render.Project(info, overview, svc.ResolveRef(ctx))
	if err != nil {
		return nil, nil, nil, err
	}
	return info, overview, rendered, nil
}
