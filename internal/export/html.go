package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/blackwell-systems/bookctl/internal/catalog"
)

// HTML renders books as a self-contained index page with a client-side
// title/author filter.
func HTML(books []catalog.Book, now time.Time) string {
	var s strings.Builder

	s.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Book Catalog</title>
    <style>
        :root {
            --accent: #1b8487;
            --accent-light: #2ecfd4;
            --card: #1c2829;
            --border: #1e3a3c;
        }
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #1a1a1a;
            color: #e0e0e0;
            line-height: 1.6;
            padding: 20px;
        }
        header {
            max-width: 1200px;
            margin: 0 auto 20px;
        }
        h1 {
            font-size: 2rem;
            color: var(--accent-light);
        }
        .subtitle {
            color: #888;
            font-size: 0.9rem;
        }
        #search {
            display: block;
            width: 100%;
            max-width: 1200px;
            margin: 0 auto 20px;
            padding: 12px 20px;
            font-size: 1rem;
            background: #2a2a2a;
            border: 1px solid #444;
            border-radius: 8px;
            color: #e0e0e0;
        }
        #search:focus {
            outline: none;
            border-color: var(--accent-light);
        }
        .library {
            max-width: 1200px;
            margin: 0 auto;
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
            gap: 16px;
        }
        .book-card {
            background: var(--card);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 16px;
        }
        .book-id {
            color: var(--accent);
            font-size: 0.8rem;
        }
        .book-title {
            font-weight: 600;
            color: #fff;
        }
        .book-author, .book-meta {
            color: #aaa;
            font-size: 0.9rem;
        }
        .empty {
            text-align: center;
            color: #888;
        }
    </style>
</head>
<body>
    <header>
        <h1>Book Catalog</h1>
`)
	fmt.Fprintf(&s, "        <p class=\"subtitle\">%d books · generated %s</p>\n",
		len(books), html.EscapeString(now.Format("2006-01-02 15:04")))
	s.WriteString(`    </header>
`)

	if len(books) == 0 {
		s.WriteString(`    <p class="empty">No books registered</p>
</body>
</html>
`)
		return s.String()
	}

	s.WriteString(`    <input type="search" id="search" placeholder="Filter by title or author">
    <div class="library" id="library">
`)
	for _, b := range books {
		renderBookCard(&s, b)
	}
	s.WriteString(`    </div>
    <script>
        const search = document.getElementById('search');
        const cards = document.querySelectorAll('.book-card');
        search.addEventListener('input', () => {
            const query = search.value.toLowerCase();
            cards.forEach(card => {
                const hay = card.dataset.title + ' ' + card.dataset.author;
                card.style.display = hay.includes(query) ? 'block' : 'none';
            });
        });
    </script>
</body>
</html>
`)

	return s.String()
}

func renderBookCard(s *strings.Builder, b catalog.Book) {
	fmt.Fprintf(s, `        <div class="book-card" data-id="%d" data-title="%s" data-author="%s">
            <div class="book-id">#%d</div>
            <div class="book-title">%s</div>
            <div class="book-author">%s</div>
`,
		b.ID,
		html.EscapeString(strings.ToLower(b.Title)),
		html.EscapeString(strings.ToLower(b.Author)),
		b.ID,
		html.EscapeString(b.Title),
		html.EscapeString(b.Author),
	)

	var meta []string
	if y := b.YearText(); y != "" {
		meta = append(meta, y)
	}
	if g := b.GenreText(); g != "" {
		meta = append(meta, html.EscapeString(g))
	}
	if len(meta) > 0 {
		fmt.Fprintf(s, "            <div class=\"book-meta\">%s</div>\n", strings.Join(meta, " · "))
	}

	s.WriteString("        </div>\n")
}
