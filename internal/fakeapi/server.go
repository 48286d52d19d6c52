package fakeapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eatgo/internal/domain"
)

type restaurantRecord struct {
	restaurant domain.Restaurant
	region     string
}

type user struct {
	name     string
	password string
}

// Server holds the fake API's data.
type Server struct {
	mu          sync.RWMutex
	regions     []domain.Region
	categories  []domain.Category
	restaurants map[int64]*restaurantRecord
	users       map[string]user   // email -> user
	tokens      map[string]string // token -> email
	nextReview  int64

	log *zap.Logger
}

// New returns an empty server.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		restaurants: make(map[int64]*restaurantRecord),
		users:       make(map[string]user),
		tokens:      make(map[string]string),
		nextReview:  1,
		log:         log,
	}
}

// AddRegion registers a region.
func (s *Server) AddRegion(r domain.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = append(s.regions, r)
}

// AddCategory registers a category.
func (s *Server) AddCategory(c domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
}

// AddRestaurant registers r under the named region. Any reviews on r are kept
// and later review ids continue after the highest one seen.
func (s *Server) AddRestaurant(region string, r domain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range r.Reviews {
		if rv.ID >= s.nextReview {
			s.nextReview = rv.ID + 1
		}
	}
	r.Reviews = append([]domain.Review(nil), r.Reviews...)
	s.restaurants[r.ID] = &restaurantRecord{restaurant: r, region: region}
}

// AddUser registers a login.
func (s *Server) AddUser(email, password, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = user{name: name, password: password}
}

func (s *Server) listRegions() []domain.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Region{}, s.regions...)
}

func (s *Server) listCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category{}, s.categories...)
}

func (s *Server) findRestaurants(region string, categoryID int64) []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Restaurant{}
	for _, rec := range s.restaurants {
		if rec.region != region || rec.restaurant.CategoryID != categoryID {
			continue
		}
		r := rec.restaurant
		r.Reviews = nil
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) restaurant(id int64) (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.restaurants[id]
	if !ok {
		return domain.Restaurant{}, false
	}
	r := rec.restaurant
	r.Reviews = append([]domain.Review{}, rec.restaurant.Reviews...)
	return r, true
}

func (s *Server) login(email, password string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok || u.password != password {
		return "", false
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	s.tokens[token] = email
	return token, true
}

func (s *Server) userForToken(token string) (user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.tokens[token]
	if !ok {
		return user{}, false
	}
	u, ok := s.users[email]
	return u, ok
}

func (s *Server) addReview(restaurantID int64, name string, score int, description string) (domain.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.restaurants[restaurantID]
	if !ok {
		return domain.Review{}, false
	}
	rv := domain.Review{
		ID:           s.nextReview,
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Score:        score,
	}
	s.nextReview++
	rec.restaurant.Reviews = append(rec.restaurant.Reviews, rv)
	return rv, true
}
