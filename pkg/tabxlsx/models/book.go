package models

// Book is an ordered collection of tables. Table order is sheet order.
type Book struct {
	Tables []*Table `json:"tables" yaml:"tables" validate:"dive,required"`
}

// NewBook returns a book holding the given tables.
func NewBook(tables ...*Table) *Book {
	return &Book{Tables: tables}
}

// AddTable appends a table.
func (b *Book) AddTable(t *Table) {
	b.Tables = append(b.Tables, t)
}

// Wipe removes all tables.
func (b *Book) Wipe() {
	b.Tables = nil
}

// Size returns the number of tables.
func (b *Book) Size() int {
	return len(b.Tables)
}

// Validate checks every table.
func (b *Book) Validate() error {
	return validate.Struct(b)
}
