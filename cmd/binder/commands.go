package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/JulienMartel/old-binder/internal/agent/sanitize"
	"github.com/JulienMartel/old-binder/internal/favorites"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/model"

	"github.com/spf13/cobra"
)

const (
	emptyFavoritesMessage = "Add at least 1 of your favorite books before getting recommendations."
	searchBaseURL         = "https://google.com/search?q="
)

// searchURL links a recommendation to a web search for it
func searchURL(book string) string {
	return searchBaseURL + url.QueryEscape(book)
}

// service is the part of the recommender the CLI uses
type service interface {
	LookupAuthor(ctx context.Context, title string) (*model.AuthorLookupResult, error)
	Recommend(ctx context.Context, favoriteBooks []string) (*model.RecommendationResult, error)
}

type app struct {
	storePath  string
	verbose    bool
	newService func(ctx context.Context) (service, error)
}

func (a *app) store() *favorites.FileStore {
	return favorites.NewFileStore(a.storePath)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "binder",
		Short:        "Keep a list of favorite books and get new recommendations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&a.storePath, "file", a.storePath, "path to the favorites JSON file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log prompts and completion timings")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newRecommendCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print favorite books in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.store().Load()
			if err != nil {
				return err
			}

			books := list.All()
			if filter != "" {
				books = list.Search(filter)
			}
			if len(books) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorite books yet.")
				return nil
			}
			for _, b := range books {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "only show entries containing this text")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var title, author string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a favorite book, looking up the author when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title = sanitize.Text(title)
			author = sanitize.Text(author)

			if author == "" {
				svc, err := a.newService(cmd.Context())
				if err != nil {
					return err
				}
				res, err := svc.LookupAuthor(cmd.Context(), title)
				if err != nil {
					return fmt.Errorf("author lookup failed: %w", err)
				}
				author = res.Author
			}

			store := a.store()
			list, err := store.Load()
			if err != nil {
				return err
			}

			book := model.NewFavoriteBook(title, author)
			if !list.Add(book) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already in your favorites.\n", book.String())
				return nil
			}
			if err := store.Save(list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q.\n", book.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "author name (looked up when empty)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove \"TITLE by AUTHOR\"",
		Short: "Remove a favorite book by its exact entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			list, err := store.Load()
			if err != nil {
				return err
			}

			book := model.FavoriteBook(sanitize.Text(args[0]))
			if !list.Remove(book) {
				return fmt.Errorf("%q is not in your favorites", book.String())
			}
			if err := store.Save(list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q.\n", book.String())
			return nil
		},
	}
}

func newRecommendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Recommend new books based on your favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.store().Load()
			if err != nil {
				return err
			}
			if list.Len() == 0 {
				return errors.New(emptyFavoritesMessage)
			}

			svc, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Recommend(cmd.Context(), list.Strings())
			if err != nil {
				return fmt.Errorf("recommendation failed: %w", err)
			}

			for _, r := range res.Recommendations {
				fmt.Fprintln(cmd.OutOrStdout(), r)
				fmt.Fprintln(cmd.OutOrStdout(), "  "+searchURL(r))
			}
			return nil
		},
	}
}
