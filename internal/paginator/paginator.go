// Package paginator reproduz o get_page tolerante: número inválido vira a
// primeira página e número além do fim vira a última.
package paginator

import "strconv"

type Page struct {
	Number   int
	PerPage  int
	Total    int64
	NumPages int
}

// Resolve calcula a página efetiva a partir do parâmetro bruto da query.
func Resolve(raw string, perPage int, total int64) Page {
	if perPage <= 0 {
		perPage = 1
	}

	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		number = 1
		if err == nil && raw != "" {
			number = numPages
		}
	}
	if number > numPages {
		number = numPages
	}

	return Page{
		Number:   number,
		PerPage:  perPage,
		Total:    total,
		NumPages: numPages,
	}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}
