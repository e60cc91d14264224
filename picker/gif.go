package picker

import "strings"

type Gif struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// PopularGifs is the fixed trending set the picker offers in place of a
// live GIF search API.
var PopularGifs = []Gif{
	{URL: "https://media.tenor.com/rePDfDWO3XoAAAAj/haha-laughing.gif", Name: "Laughing"},
	{URL: "https://media.tenor.com/Z9kHBL2hXYcAAAAj/happy-excited.gif", Name: "Happy"},
	{URL: "https://media.tenor.com/X_3HvnreJjUAAAAj/clap-good-job.gif", Name: "Clapping"},
	{URL: "https://media.tenor.com/wbKQtCg-zKcAAAAj/love-heart.gif", Name: "Love"},
	{URL: "https://media.tenor.com/3_7RzK3bJqQAAAAj/dance-party.gif", Name: "Dancing"},
	{URL: "https://media.tenor.com/UUQXC1wJ6FIAAAAJ/ok-thumbs-up.gif", Name: "OK"},
	{URL: "https://media.tenor.com/3Di1ux8ZENQAAAAJ/no-nope.gif", Name: "No"},
	{URL: "https://media.tenor.com/QyoGNUn5KRwAAAAj/surprised-shock.gif", Name: "Surprised"},
}

// SearchGifs filters by case-insensitive substring on name; an empty
// query returns the full set.
func SearchGifs(query string) []Gif {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return PopularGifs
	}

	matches := make([]Gif, 0, len(PopularGifs))
	for _, gif := range PopularGifs {
		if strings.Contains(strings.ToLower(gif.Name), query) {
			matches = append(matches, gif)
		}
	}
	return matches
}
