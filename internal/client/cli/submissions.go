package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/filex"
)

// maxSourceBytes caps the size of a source file shipped to the backend.
const maxSourceBytes = 1 << 20

// successBannerTTL is how long the submission success banner stays up.
const successBannerTTL = 3 * time.Second

// Submit records a new submission. The solution is read from a local
// file when a path is given, otherwise pasted into the prompt.
func (a *App) Submit(ctx context.Context) error {
	problemID, err := getSimpleText(a.reader, "Problem id", os.Stdout)
	if err != nil {
		return err
	}
	language, err := getSimpleText(a.reader, "Language", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Source file (empty to paste code)", os.Stdout)
	if err != nil {
		return err
	}

	var code string
	if path != "" {
		data, err := filex.ReadSource(path, maxSourceBytes)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		code = string(data)
	} else {
		code, err = GetMultiline(a.reader, "Paste your solution", os.Stdout)
		if err != nil {
			return err
		}
	}

	err = a.store.CreateSubmission(ctx, models.NewSubmission{
		Problem:     problemID,
		Language:    language,
		CodeContent: code,
	})
	if err != nil {
		renderError(a.store.Submissions().Error)
		return err
	}

	fmt.Println("Submission recorded!")
	time.AfterFunc(successBannerTTL, a.store.ClearSubmissionSuccess)
	return nil
}

// Submissions lists the submission history, optionally narrowed to one
// problem.
func (a *App) Submissions(ctx context.Context, problemID string) error {
	var err error
	if problemID != "" {
		err = a.store.FetchProblemSubmissions(ctx, problemID)
	} else {
		err = a.store.FetchSubmissions(ctx, models.SubmissionFilter{})
	}
	if err != nil {
		renderError(a.store.Submissions().Error)
		return err
	}

	state := a.store.Submissions()
	for _, s := range state.Submissions {
		when := ""
		if s.SubmittedAt != nil {
			when = s.SubmittedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("%5d  %-10s  %-20s  %s\n", s.ID, s.Language, s.Status, when)
	}
	fmt.Printf("%d submissions total\n", state.Pagination.Count)
	return nil
}
