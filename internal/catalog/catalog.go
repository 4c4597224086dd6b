package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/bookapi"
	"github.com/RobBrazier/booklister/internal/cache"
	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
)

type Service interface {
	ListBooks(ctx context.Context, req listing.Request) (model.BookPage, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	Stats(ctx context.Context) (model.BookStats, error)
	Genres(ctx context.Context) ([]string, error)
	CreateBook(ctx context.Context, input model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id string, input model.BookUpdate) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	RateBook(ctx context.Context, id string, rating float64) (model.Rating, error)
	Login(ctx context.Context, email, password string) (model.AuthPayload, error)
	Register(ctx context.Context, name, email, password string) (model.AuthPayload, error)
	Me(ctx context.Context) (model.User, error)
}

type service struct {
	client   graphql.Client
	cache    *cache.Cache
	endpoint string
	token    string
}

type Options struct {
	URL      string
	Token    string
	RetryMax int
	Cache    *cache.Cache
}

func NewService(opts Options) Service {
	client := bookapi.GetClient(bookapi.Options{
		URL:      opts.URL,
		Token:    opts.Token,
		RetryMax: opts.RetryMax,
	})
	return NewServiceWithClient(client, opts)
}

func NewServiceWithClient(client graphql.Client, opts Options) Service {
	c := opts.Cache
	if c == nil {
		c = cache.New("")
	}
	return &service{
		client:   client,
		cache:    c,
		endpoint: opts.URL,
		token:    opts.Token,
	}
}

func (s *service) cacheKey(ctx context.Context, kind string) string {
	token := s.token
	if ctxToken, ok := bookapi.TokenFrom(ctx); ok {
		token = ctxToken
	}
	return cache.Key(kind, s.endpoint, token)
}

func (s *service) ListBooks(ctx context.Context, req listing.Request) (model.BookPage, error) {
	now := time.Now()
	data, err := bookapi.GetBooks(ctx, s.client, &req.Page, &req.Limit, toFilterInput(req.Filter))
	log.Debug().Int("page", req.Page).Dur("elapsed", time.Since(now)).Msg("Retrieved books")
	if err != nil {
		return model.BookPage{}, Classify("list books", err)
	}
	return model.BookPage{
		Books:      mapSummaries(data.Books.Books),
		Total:      data.Books.Total,
		Page:       data.Books.Page,
		TotalPages: data.Books.TotalPages,
	}, nil
}

func (s *service) GetBook(ctx context.Context, id string) (model.Book, error) {
	log := log.With().Str("book", id).Logger()
	now := time.Now()
	data, err := bookapi.GetBook(ctx, s.client, id)
	log.Debug().Dur("elapsed", time.Since(now)).Msg("Retrieved book")
	if err != nil {
		return model.Book{}, Classify("get book", err)
	}
	if data.Book == nil {
		return model.Book{}, notFound("get book")
	}
	return mapDetail(*data.Book), nil
}

// SearchBooks returns abbreviated books. A blank query matches nothing and
// issues no request.
func (s *service) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Book{}, nil
	}
	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}
	data, err := bookapi.SearchBooks(ctx, s.client, query, limitArg)
	if err != nil {
		return nil, Classify("search books", err)
	}
	books := make([]model.Book, 0, len(data.SearchBooks))
	for _, book := range data.SearchBooks {
		books = append(books, mapResult(book))
	}
	return books, nil
}

func (s *service) Stats(ctx context.Context) (model.BookStats, error) {
	loader := cache.StatsLoaderFunc(func(ctx context.Context, key string) (model.BookStats, error) {
		now := time.Now()
		log.Info().Msg("Fetching book stats")
		data, err := bookapi.GetBookStats(ctx, s.client)
		log.Info().Dur("elapsed", time.Since(now)).Msg("Retrieved book stats")
		if err != nil {
			return model.BookStats{}, err
		}
		return mapStats(data.BookStats), nil
	})
	stats, err := s.cache.Stats.Get(ctx, s.cacheKey(ctx, "stats"), loader)
	if err != nil {
		return model.BookStats{}, Classify("book stats", err)
	}
	return stats, nil
}

func (s *service) Genres(ctx context.Context) ([]string, error) {
	loader := cache.GenresLoaderFunc(func(ctx context.Context, key string) ([]string, error) {
		log.Info().Msg("Fetching genres")
		data, err := bookapi.GetGenres(ctx, s.client)
		if err != nil {
			return nil, err
		}
		return data.Genres, nil
	})
	genres, err := s.cache.Genres.Get(ctx, s.cacheKey(ctx, "genres"), loader)
	if err != nil {
		return nil, Classify("genres", err)
	}
	return genres, nil
}

func (s *service) CreateBook(ctx context.Context, input model.BookInput) (model.Book, error) {
	if err := validate.Struct(input); err != nil {
		return model.Book{}, Classify("create book", err)
	}
	data, err := bookapi.CreateBook(bookapi.WithoutRetry(ctx), s.client, toBookInput(input))
	if err != nil {
		return model.Book{}, Classify("create book", err)
	}
	s.cache.Invalidate()
	book := mapSummary(data.CreateBook)
	log.Info().Str("book", book.ID).Str("title", book.Title).Msg("Created book")
	return book, nil
}

func (s *service) UpdateBook(ctx context.Context, id string, input model.BookUpdate) (model.Book, error) {
	if err := validate.Struct(input); err != nil {
		return model.Book{}, Classify("update book", err)
	}
	data, err := bookapi.UpdateBook(bookapi.WithoutRetry(ctx), s.client, id, toUpdateInput(input))
	if err != nil {
		return model.Book{}, Classify("update book", err)
	}
	s.cache.Invalidate()
	log.Info().Str("book", id).Msg("Updated book")
	return mapSummary(data.UpdateBook), nil
}

func (s *service) DeleteBook(ctx context.Context, id string) error {
	data, err := bookapi.DeleteBook(bookapi.WithoutRetry(ctx), s.client, id)
	if err != nil {
		return Classify("delete book", err)
	}
	if !data.DeleteBook {
		return notFound("delete book")
	}
	s.cache.Invalidate()
	log.Info().Str("book", id).Msg("Deleted book")
	return nil
}

func (s *service) RateBook(ctx context.Context, id string, rating float64) (model.Rating, error) {
	if err := validate.Rating(rating); err != nil {
		return model.Rating{}, Classify("rate book", err)
	}
	data, err := bookapi.RateBook(bookapi.WithoutRetry(ctx), s.client, id, rating)
	if err != nil {
		return model.Rating{}, Classify("rate book", err)
	}
	s.cache.Invalidate()
	result := model.Rating{ID: data.RateBook.Id, Rating: rating}
	if data.RateBook.Rating != nil {
		result.Rating = *data.RateBook.Rating
	}
	return result, nil
}

func (s *service) Login(ctx context.Context, email, password string) (model.AuthPayload, error) {
	creds := validate.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := validate.Struct(creds); err != nil {
		return model.AuthPayload{}, Classify("login", err)
	}
	data, err := bookapi.Login(bookapi.WithoutRetry(ctx), s.client, bookapi.LoginInput{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return model.AuthPayload{}, Classify("login", err)
	}
	return model.AuthPayload{Token: data.Login.Token, User: mapUser(data.Login.User)}, nil
}

func (s *service) Register(ctx context.Context, name, email, password string) (model.AuthPayload, error) {
	reg := validate.Registration{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password}
	if err := validate.Struct(reg); err != nil {
		return model.AuthPayload{}, Classify("register", err)
	}
	data, err := bookapi.Register(bookapi.WithoutRetry(ctx), s.client, bookapi.RegisterInput{Name: reg.Name, Email: reg.Email, Password: reg.Password})
	if err != nil {
		return model.AuthPayload{}, Classify("register", err)
	}
	return model.AuthPayload{Token: data.Register.Token, User: mapUser(data.Register.User)}, nil
}

func (s *service) Me(ctx context.Context) (model.User, error) {
	data, err := bookapi.Me(ctx, s.client)
	if err != nil {
		return model.User{}, Classify("me", err)
	}
	if data.Me == nil {
		return model.User{}, &Error{Kind: ErrUnauthorized, Op: "me"}
	}
	return model.User{
		ID:        data.Me.Id,
		Name:      data.Me.Name,
		Email:     data.Me.Email,
		Avatar:    data.Me.Avatar,
		CreatedAt: parseTimestamp(data.Me.CreatedAt),
	}, nil
}
