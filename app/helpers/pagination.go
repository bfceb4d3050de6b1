package helpers

import "strconv"

// Page is one resolved page of a listing.
type Page struct {
	Number   int
	NumPages int
	PerPage  int
	Total    int
	Offset   int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.NumPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// Paginate resolves a raw page parameter against a listing of total items.
// A non-numeric page falls back to the first page; a page beyond the end
// falls back to the last page. An empty listing still has one page.
func Paginate(total, perPage int, raw string) Page {
	numPages := (total + perPage - 1) / perPage
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		NumPages: numPages,
		PerPage:  perPage,
		Total:    total,
		Offset:   (number - 1) * perPage,
	}
}
