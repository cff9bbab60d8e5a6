package services

import (
	"fmt"
	"strings"

	"github.com/vibetheforce/talkvote/internal/core/domain"
)

// BuildSummaryPrompt renders the aggregate results as a structured prompt
// asking the model for a short reading of the voting pattern.
func BuildSummaryPrompt(results domain.Results) string {
	var b strings.Builder

	b.WriteString("Analyze the following voting data for a conference talk and write a short descriptive summary.\n\n")
	b.WriteString("Vote distribution (1-5 star scale):\n")
	for rating := domain.MinRating; rating <= domain.MaxRating; rating++ {
		fmt.Fprintf(&b, "- %d stars: %d votes (%.1f%%)\n", rating, results.Votes[rating], results.Percentage(rating))
	}

	mostVoted, mostVotedCount := results.MostVoted()
	fmt.Fprintf(&b, "\nTotal votes: %d\n", results.TotalVotes)
	fmt.Fprintf(&b, "Average: %.2f stars\n", results.AverageRating)
	fmt.Fprintf(&b, "Most voted rating: %d stars with %d votes\n\n", mostVoted, mostVotedCount)

	b.WriteString("Write exactly 3-4 sentences that:\n")
	b.WriteString("1. Describe the overall sentiment (positive/negative/mixed) based on the distribution\n")
	b.WriteString("2. Identify the most interesting pattern in the vote distribution\n")
	b.WriteString("3. Offer one meaningful comparative or statistical observation\n\n")
	b.WriteString("Respond with the summary text only, without titles, markdown formatting or introductions.\n")

	return b.String()
}
