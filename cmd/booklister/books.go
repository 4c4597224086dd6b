package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List, inspect, rate and delete books",
	}

	cmd.AddCommand(newBooksListCmd())
	cmd.AddCommand(newBooksGetCmd())
	cmd.AddCommand(newBooksDeleteCmd())
	cmd.AddCommand(newBooksRateCmd())

	return cmd
}

type listFlags struct {
	page      int
	search    string
	genre     string
	language  string
	minYear   int
	maxYear   int
	minRating float64
	maxRating float64
}

// state applies the flags through the same controller the web list uses.
func (f listFlags) state(cmd *cobra.Command) listing.State {
	var filter model.BookFilter
	if f.genre != "" {
		filter.Genre = &f.genre
	}
	if f.language != "" {
		filter.Language = &f.language
	}
	if cmd.Flags().Changed("min-year") {
		filter.MinYear = &f.minYear
	}
	if cmd.Flags().Changed("max-year") {
		filter.MaxYear = &f.maxYear
	}
	if cmd.Flags().Changed("min-rating") {
		filter.MinRating = &f.minRating
	}
	if cmd.Flags().Changed("max-rating") {
		filter.MaxRating = &f.maxRating
	}
	state := listing.New()
	state.SetFilter(filter)
	state.SetSearch(f.search)
	state.SetPage(f.page)
	return state
}

func newBooksListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of books",
		Example: `  booklister books list --genre Fantasy --min-rating 4
  booklister books list --search dune --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := flags.state(cmd)
			page, err := newService().ListBooks(cmd.Context(), state.Request())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeBooks(out, page.Books)
			fmt.Fprintf(out, "\nPage %d of %d (%d books)\n", state.Page, max(page.TotalPages, 1), page.Total)
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Search title and author")
	cmd.Flags().StringVarP(&f.genre, "genre", "g", "", "Only books in this genre")
	cmd.Flags().StringVar(&f.language, "language", "", "Only books in this language")
	cmd.Flags().IntVar(&f.minYear, "min-year", 0, "Published in or after this year")
	cmd.Flags().IntVar(&f.maxYear, "max-year", 0, "Published in or before this year")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Minimum rating")
	cmd.Flags().Float64Var(&f.maxRating, "max-rating", 0, "Maximum rating")
}

func newBooksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := newService().GetBook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeBook(cmd.OutOrStdout(), book)
			return nil
		},
	}
}

func newBooksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newService().DeleteBook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Book deleted successfully!")
			return nil
		},
	}
}

func newBooksRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a book from 0 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q: %w", args[1], err)
			}
			rating, err := newService().RateBook(cmd.Context(), args[0], value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated %s: %.1f\n", rating.ID, rating.Rating)
			return nil
		},
	}
}

func rating(book model.Book) string {
	if book.Rating == nil {
		return "-"
	}
	return strconv.FormatFloat(*book.Rating, 'f', 1, 64)
}

func writeBooks(out io.Writer, books []model.Book) {
	if len(books) == 0 {
		fmt.Fprintln(out, "No books found")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tGENRE\tRATING")
	for _, book := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", book.ID, book.Title, book.Author, book.PublishedYear, book.Genre, rating(book))
	}
	tw.Flush()
}

func writeBook(out io.Writer, book model.Book) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s\t%s\n", label, value)
		}
	}
	optional := func(value *string) string {
		if value == nil {
			return ""
		}
		return *value
	}
	row("ID", book.ID)
	row("Title", book.Title)
	row("Author", book.Author)
	row("Year", strconv.Itoa(book.PublishedYear))
	row("Genre", book.Genre)
	row("Language", book.Language)
	row("Rating", rating(book))
	row("ISBN", optional(book.ISBN))
	row("Publisher", optional(book.Publisher))
	if book.TotalPages != nil {
		row("Pages", strconv.Itoa(*book.TotalPages))
	}
	row("Description", optional(book.Description))
	tw.Flush()
}
