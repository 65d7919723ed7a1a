package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitix/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

// cmdInitWorkspaceHere never overwrites existing files; `unitix init --force` does.
func cmdInitWorkspaceHere(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return initWorkspaceDoneMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: wd, err: errors.New("WorkspaceInitializer is nil")}
		}

		err = usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(wd, false)
		return initWorkspaceDoneMsg{root: wd, err: err}
	}
}
