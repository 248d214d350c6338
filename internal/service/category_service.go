package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/websocket"
)

// defaultCategories is the starter set installed into an empty tracker. The
// seed is idempotent per name: existing categories are left untouched.
var defaultCategories = []*domain.Category{
	{Name: "Groceries", Descriptions: []string{"Eggs", "Chicken", "Meat", "Dry Fruits", "Khari", "Cold Drinks", "Wheat (Gehu)", "Fish", "Vegetables", "Fruits", "Oil", "Rice", "Aata (Flour)", "Dal (Lentils)", "Masala (Spices)", "Milk", "Soap", "Snacks", "Sugar", "Salt", "Tea", "Coffee", "Other"}},
	{Name: "Transportation", Descriptions: []string{"Taxi", "Train Fare", "Fuel (Petrol/Diesel)", "Car Maintenance", "Bike Maintenance", "Airfare", "Car Rental", "Other"}},
	{Name: "Recharge/Bill/EMI Payment", Descriptions: []string{"Electricity", "Wifi-Internet", "Mobile Recharge", "Gas Bill", "Loan Payment", "Subscription - Netflix", "Subscription - YouTube", "Subscription - LinkedIn", "Subscription - Hotstar", "Subscription - AppleTV", "Subscription - Other"}},
	{Name: "Healthcare", Descriptions: []string{"Medicine", "Doctor Visit", "Hospital Bill", "Therapy", "Vitamins/Supplements", "Medical Equipment", "Lab Tests", "Prescription Drugs", "Vision Care (e.g., Glasses)", "Other"}},
	{Name: "Insurance", Descriptions: []string{"Health Insurance", "Car Insurance", "Home Insurance", "Life Insurance", "Other"}},
	{Name: "Cloths", Descriptions: []string{"Shirts", "Pants", "Dresses", "Other"}},
	{Name: "Education - Books", Descriptions: []string{"Books", "E-Books", "Journals", "Magazines", "Study Guides", "Stationery", "Other"}},
	{Name: "Investment", Descriptions: []string{"Mutual Fund", "Stocks", "Bond Purchase", "Real Estate", "Cryptocurrency", "PPF", "NPS", "Fixed Deposit", "Gold/Silver", "Business", "Other"}},
	{Name: "Income", Descriptions: []string{"Saving A/c.", "Salary", "Bonus", "Commission", "Dividend", "Interest", "Gift", "Refund", "Other"}},
	{Name: "Other Expenses", Descriptions: []string{"Repair - Electronics", "Plumber", "Hobbies", "Travel", "Taxes", "Miscellaneous", "Other"}},
}

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *CategoryService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrCategoryNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return "", domain.ErrCategoryNameTooLong
	}
	return name, nil
}

// normalizeDescriptions trims entries and drops blanks and case-insensitive
// duplicates, preserving first-seen order.
func normalizeDescriptions(descriptions []string) []string {
	seen := make(map[string]struct{}, len(descriptions))
	result := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		d = strings.TrimSpace(d)
		if d == "" || len(d) > domain.MaxDescriptionLength {
			continue
		}
		key := strings.ToLower(d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, d)
	}
	return result
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(name string, descriptions []string) (*domain.Category, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:         name,
		Descriptions: normalizeDescriptions(descriptions),
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryCreated(created))
	return created, nil
}

// GetCategories retrieves all categories
func (s *CategoryService) GetCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// UpdateCategory updates a category's name and description presets
func (s *CategoryService) UpdateCategory(id uuid.UUID, name string, descriptions []string) (*domain.Category, error) {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	name, err = validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	existing.Name = name
	existing.Descriptions = normalizeDescriptions(descriptions)

	updated, err := s.categoryRepo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryUpdated(updated))
	return updated, nil
}

// AddDescription appends a description preset to a category. Adding one that
// already exists (case-insensitively) is a no-op, not an error.
func (s *CategoryService) AddDescription(id uuid.UUID, description string) (*domain.Category, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	for _, d := range category.Descriptions {
		if strings.EqualFold(d, description) {
			return category, nil
		}
	}

	category.Descriptions = append(category.Descriptions, description)
	updated, err := s.categoryRepo.Update(category)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryUpdated(updated))
	return updated, nil
}

// DeleteCategory removes a category. Budgets referencing it become orphaned
// rather than being cascaded.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.CategoryDeleted(existing))
	return nil
}

// SeedDefaults installs the default category set, skipping names that
// already exist, and returns the full category list afterwards. An empty
// store skips the per-name lookups.
func (s *CategoryService) SeedDefaults() ([]*domain.Category, error) {
	count, err := s.categoryRepo.Count()
	if err != nil {
		return nil, err
	}

	var seeded []*domain.Category
	for _, def := range defaultCategories {
		if count > 0 {
			_, err := s.categoryRepo.GetByName(def.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrCategoryNotFound) {
				return nil, err
			}
		}

		created, err := s.categoryRepo.Create(&domain.Category{
			Name:         def.Name,
			Descriptions: append([]string(nil), def.Descriptions...),
		})
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, created)
	}

	if len(seeded) > 0 {
		s.publishEvent(websocket.CategoriesSeeded(seeded))
	}
	return s.categoryRepo.GetAll()
}
