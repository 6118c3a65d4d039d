package domain

import (
	"regexp"
	"time"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_-]+)`)

type Comment struct {
	CreatedAt  time.Time  `json:"created_at"`
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	AuthorID   string     `json:"author_id"`
	AuthorInfo AuthorInfo `json:"author_info"`
	Mentions   []string   `json:"mentions"`
}

// ExtractMentions returns the @-handles appearing in content, in order of
// first appearance. Duplicates are kept.
func ExtractMentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, m[1])
	}
	return mentions
}
