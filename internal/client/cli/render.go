package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/client/store"
)

// renderError prints a failed operation's payload: field errors next to
// their field names, then any general messages.
func renderError(p *store.ErrorPayload) {
	if p == nil {
		return
	}
	for field, msgs := range p.Fields {
		for _, m := range msgs {
			printlnFn(fmt.Sprintf("  %s: %s", field, m))
		}
	}
	for _, m := range p.NonField {
		printlnFn("  " + m)
	}
	if p.Message != "" {
		printlnFn("  " + p.Message)
	}
}

func renderProblem(p *models.Problem) {
	if p == nil {
		return
	}
	fmt.Printf("#%d %s [%s]\n", p.ID, p.Title, p.Difficulty)
	if len(p.Tags) > 0 {
		fmt.Println("Tags:", strings.Join(p.Tags, ", "))
	}
	if p.SuccessRate > 0 {
		fmt.Printf("Success rate: %.1f%%\n", p.SuccessRate)
	}
	if p.Description != "" {
		fmt.Println()
		fmt.Println(p.Description)
	}
	for _, ex := range p.Examples {
		fmt.Println()
		fmt.Println("Input: ", ex.Input)
		fmt.Println("Output:", ex.Output)
		if ex.Explanation != "" {
			fmt.Println("Explanation:", ex.Explanation)
		}
	}
}

func renderProfile(u *models.User) {
	if u == nil {
		return
	}
	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	if u.FirstName != "" || u.LastName != "" {
		fmt.Println("Name:", strings.TrimSpace(u.FirstName+" "+u.LastName))
	}
	if u.LeetcodeUsername != "" {
		fmt.Println("LeetCode:", u.LeetcodeUsername)
	}
	if u.Bio != "" {
		fmt.Println("Bio:", u.Bio)
	}
	fmt.Printf("Solved: %d (%d easy, %d medium, %d hard)\n",
		u.TotalProblemsSolved, u.EasyProblemsSolved, u.MediumProblemsSolved, u.HardProblemsSolved)
	fmt.Printf("Streak: %d (longest %d)\n", u.CurrentStreak, u.LongestStreak)
}
