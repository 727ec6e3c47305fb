package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaswdr/faker"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type DishTemplate struct {
	Name     string
	Tags     []string
	MinPrice int
	MaxPrice int
}

type CategoryTemplate struct {
	Name   string
	Dishes []DishTemplate
}

// DefaultCatalog covers every tag the time-of-day and weather strategies look for.
var DefaultCatalog = []CategoryTemplate{
	{Name: "Bữa sáng", Dishes: []DishTemplate{
		{Name: "Bánh mì thịt", Tags: []string{"breakfast", "bread", "banh_mi"}, MinPrice: 20, MaxPrice: 35},
		{Name: "Xôi gà", Tags: []string{"breakfast", "xoi"}, MinPrice: 25, MaxPrice: 40},
		{Name: "Cháo sườn", Tags: []string{"breakfast", "porridge", "late-night", "hot"}, MinPrice: 30, MaxPrice: 45},
	}},
	{Name: "Cơm", Dishes: []DishTemplate{
		{Name: "Cơm tấm sườn bì", Tags: []string{"main", "rice", "popular"}, MinPrice: 45, MaxPrice: 65},
		{Name: "Cơm gà xối mỡ", Tags: []string{"main", "rice"}, MinPrice: 45, MaxPrice: 60},
		{Name: "Cơm rang dưa bò", Tags: []string{"main", "rice", "fastfood", "late-night"}, MinPrice: 40, MaxPrice: 55},
	}},
	{Name: "Phở & Bún", Dishes: []DishTemplate{
		{Name: "Phở bò tái", Tags: []string{"main", "noodle", "soup", "hot", "breakfast"}, MinPrice: 50, MaxPrice: 70},
		{Name: "Bún chả Hà Nội", Tags: []string{"main", "noodle", "grill", "popular"}, MinPrice: 45, MaxPrice: 65},
		{Name: "Mì xào hải sản", Tags: []string{"main", "noodle", "late-night"}, MinPrice: 50, MaxPrice: 75},
	}},
	{Name: "Lẩu & Nướng", Dishes: []DishTemplate{
		{Name: "Lẩu thái hải sản", Tags: []string{"main", "hotpot", "hot", "soup"}, MinPrice: 250, MaxPrice: 400},
		{Name: "Bò nướng lá lốt", Tags: []string{"main", "grill"}, MinPrice: 70, MaxPrice: 110},
	}},
	{Name: "Ăn vặt", Dishes: []DishTemplate{
		{Name: "Bánh tráng trộn", Tags: []string{"snack", "streetfood"}, MinPrice: 20, MaxPrice: 30},
		{Name: "Khoai tây chiên", Tags: []string{"snack", "fastfood"}, MinPrice: 25, MaxPrice: 40},
		{Name: "Gỏi cuốn tôm thịt", Tags: []string{"light_meal", "salad", "cold"}, MinPrice: 30, MaxPrice: 45},
	}},
	{Name: "Đồ uống", Dishes: []DishTemplate{
		{Name: "Cà phê sữa đá", Tags: []string{"drink", "coffee", "cold", "ice", "breakfast"}, MinPrice: 20, MaxPrice: 35},
		{Name: "Trà sữa trân châu", Tags: []string{"drink", "milk_tea", "cold", "ice"}, MinPrice: 30, MaxPrice: 50},
		{Name: "Nước ép cam", Tags: []string{"drink", "fruit", "cold"}, MinPrice: 25, MaxPrice: 40},
	}},
	{Name: "Tráng miệng", Dishes: []DishTemplate{
		{Name: "Chè khúc bạch", Tags: []string{"dessert", "cold", "ice"}, MinPrice: 25, MaxPrice: 35},
		{Name: "Bánh flan", Tags: []string{"dessert"}, MinPrice: 15, MaxPrice: 25},
		{Name: "Sữa chua nếp cẩm", Tags: []string{"dessert", "fruit"}, MinPrice: 20, MaxPrice: 30},
	}},
}

type Seeder struct {
	DB      *sql.DB
	Fake    faker.Faker
	Catalog []CategoryTemplate
	Users   int
	Logger  *zap.Logger
}

func NewSeeder(db *sql.DB, fake faker.Faker, users int, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{DB: db, Fake: fake, Catalog: DefaultCatalog, Users: users, Logger: logger}
}

type Summary struct {
	Categories int
	Dishes     int
	Users      int
}

// Run inserts the demo catalog and users in one transaction.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	summary := &Summary{}
	for _, category := range s.Catalog {
		var categoryID int
		err := tx.QueryRowContext(ctx, `
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET is_active = TRUE
			RETURNING id`, category.Name).Scan(&categoryID)
		if err != nil {
			return nil, fmt.Errorf("insert category %q: %w", category.Name, err)
		}
		summary.Categories++

		for _, dish := range category.Dishes {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO dishes (name, description, price, category_id, tags, rating, stock, total_orders)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				dish.Name,
				s.Fake.Lorem().Sentence(10),
				s.price(dish),
				categoryID,
				pq.Array(dish.Tags),
				s.Fake.Float64(1, 3, 5),
				s.Fake.IntBetween(10, 200),
				s.Fake.IntBetween(0, 500),
			); err != nil {
				return nil, fmt.Errorf("insert dish %q: %w", dish.Name, err)
			}
			summary.Dishes++
		}
	}

	for i := 0; i < s.Users; i++ {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (email, full_name) VALUES ($1, $2)
			ON CONFLICT (email) DO NOTHING`,
			s.Fake.Internet().Email(), s.Fake.Person().Name())
		if err != nil {
			return nil, fmt.Errorf("insert user: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			summary.Users++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed: %w", err)
	}
	s.Logger.Info("catalog seeded",
		zap.Int("categories", summary.Categories),
		zap.Int("dishes", summary.Dishes),
		zap.Int("users", summary.Users))
	return summary, nil
}

// price picks a whole thousand VND in the template's range, given in thousands.
func (s *Seeder) price(d DishTemplate) int {
	return s.Fake.IntBetween(d.MinPrice, d.MaxPrice) * 1000
}
