package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
)

// Problems lists a page of the catalog. page is the raw argument from
// the REPL; empty means the first page.
func (a *App) Problems(ctx context.Context, page string) error {
	filter := models.ProblemFilter{}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			fmt.Println("Usage: problems [page]")
			return err
		}
		filter.Page = n
	}

	if err := a.store.FetchProblems(ctx, filter); err != nil {
		renderError(a.store.Problems().Error)
		return err
	}

	state := a.store.Problems()
	for _, p := range state.Problems {
		fmt.Printf("%5d  %-8s  %s\n", p.ID, p.Difficulty, p.Title)
	}
	fmt.Printf("%d problems total\n", state.Pagination.Count)
	if state.Pagination.Next != nil {
		current := filter.Page
		if current == 0 {
			current = 1
		}
		fmt.Println("More available: problems", current+1)
	}
	return nil
}

// Problem shows a single catalog entry with its examples.
func (a *App) Problem(ctx context.Context, id string) error {
	if err := a.store.FetchProblem(ctx, id); err != nil {
		renderError(a.store.Problems().Error)
		return err
	}

	renderProblem(a.store.Problems().Problem)
	return nil
}

// Today shows today's challenge, if one is scheduled.
func (a *App) Today(ctx context.Context) error {
	if err := a.store.FetchTodayChallenge(ctx); err != nil {
		renderError(a.store.Problems().Error)
		return err
	}

	p := a.store.Problems().TodayChallenge
	if p == nil {
		fmt.Println("No challenge scheduled for today")
		return nil
	}
	renderProblem(p)
	return nil
}
