package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"elitemotors/internal/cache"
	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
)

const (
	carCacheTTL      = 5 * time.Minute
	featuredCacheKey = "cars:featured"
)

// CarService handles inventory operations.
type CarService interface {
	ListCars(ctx context.Context) ([]model.Car, error)
	ListFeatured(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id uint) (*model.Car, error)
	CreateCar(ctx context.Context, car *model.Car) (*model.Car, error)
	UpdateCar(ctx context.Context, id uint, update *model.Car) (*model.Car, error)
	DeleteCar(ctx context.Context, id uint) error
	Seed(ctx context.Context) (created int, existing int, err error)
}

// carCache is the slice of the cache client the service needs. *cache.Client
// satisfies it, including as a nil pointer.
type carCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ carCache = (*cache.Client)(nil)

type carService struct {
	repo  repository.CarRepository
	cache carCache
}

// NewCarService builds a CarService with repository and cache.
func NewCarService(repo repository.CarRepository, cache carCache) CarService {
	return &carService{repo: repo, cache: cache}
}

func (s *carService) cacheKey(id uint) string {
	return fmt.Sprintf("car:%d", id)
}

// carCacheEntry is the cache form of a Car. The entity hides the flat spec
// columns from JSON, so caching the entity directly would return cars with
// empty specs on a hit.
type carCacheEntry struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Price        int       `json:"price"`
	Year         int       `json:"year"`
	Mileage      int       `json:"mileage"`
	Image        string    `json:"image"`
	Featured     bool      `json:"featured"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	Engine       string    `json:"engine"`
	Transmission string    `json:"transmission"`
	Fuel         string    `json:"fuel"`
	CreatedAt    time.Time `json:"created_at"`
}

func newCarCacheEntry(car *model.Car) carCacheEntry {
	return carCacheEntry{
		ID:           car.ID,
		Name:         car.Name,
		Price:        car.Price,
		Year:         car.Year,
		Mileage:      car.Mileage,
		Image:        car.Image,
		Featured:     car.Featured,
		Description:  car.Description,
		Color:        car.Color,
		Engine:       car.Engine,
		Transmission: car.Transmission,
		Fuel:         car.Fuel,
		CreatedAt:    car.CreatedAt,
	}
}

func (e carCacheEntry) car() model.Car {
	return model.Car{
		ID:           e.ID,
		Name:         e.Name,
		Price:        e.Price,
		Year:         e.Year,
		Mileage:      e.Mileage,
		Image:        e.Image,
		Featured:     e.Featured,
		Description:  e.Description,
		Color:        e.Color,
		Engine:       e.Engine,
		Transmission: e.Transmission,
		Fuel:         e.Fuel,
		CreatedAt:    e.CreatedAt,
	}
}

func newCarCacheEntries(cars []model.Car) []carCacheEntry {
	entries := make([]carCacheEntry, 0, len(cars))
	for i := range cars {
		entries = append(entries, newCarCacheEntry(&cars[i]))
	}
	return entries
}

func carsFromCacheEntries(entries []carCacheEntry) []model.Car {
	cars := make([]model.Car, 0, len(entries))
	for _, entry := range entries {
		cars = append(cars, entry.car())
	}
	return cars
}

func (s *carService) ListCars(ctx context.Context) ([]model.Car, error) {
	return s.repo.List(ctx)
}

// ListFeatured serves the featured shelf from cache when possible.
func (s *carService) ListFeatured(ctx context.Context) ([]model.Car, error) {
	if data, _ := s.cache.Get(ctx, featuredCacheKey); data != nil {
		var cached []carCacheEntry
		if err := json.Unmarshal(data, &cached); err == nil {
			return carsFromCacheEntries(cached), nil
		}
	}

	cars, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(newCarCacheEntries(cars)); err == nil {
		_ = s.cache.Set(ctx, featuredCacheKey, payload, carCacheTTL)
	}
	return cars, nil
}

// GetCar retrieves a car by ID with caching.
func (s *carService) GetCar(ctx context.Context, id uint) (*model.Car, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached carCacheEntry
		if err := json.Unmarshal(data, &cached); err == nil {
			car := cached.car()
			return &car, nil
		}
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(newCarCacheEntry(car)); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, carCacheTTL)
	}
	return car, nil
}

func (s *carService) CreateCar(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	_ = s.cache.Delete(ctx, featuredCacheKey)
	return car, nil
}

// UpdateCar applies a full field update to an existing car. The ID is
// immutable.
func (s *carService) UpdateCar(ctx context.Context, id uint, update *model.Car) (*model.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, err
	}

	car.Name = update.Name
	car.Price = update.Price
	car.Year = update.Year
	car.Mileage = update.Mileage
	car.Image = update.Image
	car.Featured = update.Featured
	car.Description = update.Description
	car.Color = update.Color
	car.Engine = update.Engine
	car.Transmission = update.Transmission
	car.Fuel = update.Fuel

	if err := s.repo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, featuredCacheKey)
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCarNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, featuredCacheKey)
	return nil
}

// Seed inserts the starter catalog only when the table is empty. On a
// non-empty table it reports the existing count and writes nothing.
func (s *carService) Seed(ctx context.Context) (created int, existing int, err error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count cars: %w", err)
	}
	if count > 0 {
		return 0, int(count), nil
	}

	catalog := StarterCatalog()
	if err := s.repo.CreateBatch(ctx, catalog); err != nil {
		return 0, 0, fmt.Errorf("seed cars: %w", err)
	}

	_ = s.cache.Delete(ctx, featuredCacheKey)
	return len(catalog), 0, nil
}

// StarterCatalog returns the fixed sample inventory used to bootstrap an
// empty database.
func StarterCatalog() []model.Car {
	return []model.Car{
		{
			Name:         "Mercedes-Benz S-Class",
			Price:        95000,
			Year:         2023,
			Mileage:      5000,
			Image:        "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&h=600&fit=crop",
			Featured:     true,
			Description:  "Luxury sedan with cutting-edge technology and comfort",
			Color:        "Obsidian Black",
			Engine:       "3.0L V6",
			Transmission: "Automatic",
			Fuel:         "Gasoline",
		},
		{
			Name:         "BMW M4 Competition",
			Price:        78000,
			Year:         2023,
			Mileage:      3000,
			Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=600&fit=crop",
			Featured:     true,
			Description:  "High-performance sports coupe with racing DNA",
			Color:        "Alpine White",
			Engine:       "3.0L Twin-Turbo I6",
			Transmission: "Automatic",
			Fuel:         "Gasoline",
		},
		{
			Name:         "Porsche 911 Carrera",
			Price:        115000,
			Year:         2023,
			Mileage:      4000,
			Image:        "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&h=600&fit=crop",
			Featured:     true,
			Description:  "Iconic sports car with timeless design",
			Color:        "Guards Red",
			Engine:       "3.0L Twin-Turbo Flat-6",
			Transmission: "PDK",
			Fuel:         "Gasoline",
		},
		{
			Name:         "Audi e-tron GT",
			Price:        104000,
			Year:         2024,
			Mileage:      1200,
			Image:        "https://images.unsplash.com/photo-1614200179396-2bdb77ebf81b?w=800&h=600&fit=crop",
			Featured:     false,
			Description:  "All-electric gran turismo with quattro drive",
			Color:        "Daytona Gray",
			Engine:       "Dual Electric Motor",
			Transmission: "2-Speed Automatic",
			Fuel:         "Electric",
		},
		{
			Name:         "Range Rover Sport",
			Price:        89000,
			Year:         2023,
			Mileage:      8000,
			Image:        "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			Featured:     false,
			Description:  "Refined luxury SUV with genuine off-road capability",
			Color:        "Santorini Black",
			Engine:       "3.0L Turbo I6",
			Transmission: "Automatic",
			Fuel:         "Gasoline",
		},
		{
			Name:         "Lexus LC 500",
			Price:        97000,
			Year:         2022,
			Mileage:      11000,
			Image:        "https://images.unsplash.com/photo-1617814076367-b759c7d7e738?w=800&h=600&fit=crop",
			Featured:     false,
			Description:  "Grand tourer with a naturally aspirated V8",
			Color:        "Structural Blue",
			Engine:       "5.0L V8",
			Transmission: "Automatic",
			Fuel:         "Gasoline",
		},
	}
}
