package service

import (
	"strings"
	"unicode"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type DishGroup string

const (
	GroupMain    DishGroup = "main"
	GroupDrink   DishGroup = "drink"
	GroupDessert DishGroup = "dessert"
	GroupSnack   DishGroup = "snack"
	GroupOther   DishGroup = "other"
)

type groupVocabulary struct {
	group    DishGroup
	tags     []string
	keywords []string
}

// Order matters: dessert and drink keywords overlap with main dish words ("banh", "tra").
var groupVocabularies = []groupVocabulary{
	{
		group: GroupDessert,
		tags:  []string{"dessert", "trang mieng"},
		keywords: []string{"trang mieng", "flan", "pudding", "yaourt", "yogurt", "che", "kem", "banh su",
			"banh kem", "banh ngot", "cookie"},
	},
	{
		group: GroupDrink,
		tags:  []string{"drink", "do uong", "beverage", "milk tea", "coffee"},
		keywords: []string{"thuc uong", "do uong", "nuoc", "tra", "tra sua", "sinh to", "smoothie", "juice",
			"coffee", "cafe", "ca phe", "espresso", "latte", "frappe", "milk tea", "giai khat"},
	},
	{
		group: GroupSnack,
		tags:  []string{"snack", "an nhe", "streetfood"},
		keywords: []string{"snack", "an nhe", "an vat", "khai vi", "mon phu", "side", "khoai tay chien", "ga vien",
			"xuc xich", "banh trang", "tokbokki"},
	},
	{
		group: GroupMain,
		tags:  []string{"main", "mon chinh", "rice", "noodle", "hotpot", "grill"},
		keywords: []string{"com", "bun", "pho", "mi", "mien", "banh mi", "pizza", "burger", "ga ran", "lau", "nuong",
			"steak", "suon", "thit", "bo bit tet"},
	},
}

// ClassifyDish buckets a dish by tags first, then by category and name keywords.
func ClassifyDish(d domain.Dish) DishGroup {
	tags := make(map[string]struct{}, len(d.Tags))
	for _, t := range d.Tags {
		tags[foldText(t)] = struct{}{}
	}
	for _, v := range groupVocabularies {
		for _, t := range v.tags {
			if _, ok := tags[t]; ok {
				return v.group
			}
		}
	}

	words := strings.Fields(foldText(d.CategoryName + " " + d.Name + " " + d.Description))
	text := " " + strings.Join(words, " ") + " "
	for _, v := range groupVocabularies {
		for _, k := range v.keywords {
			if strings.Contains(text, " "+k+" ") {
				return v.group
			}
		}
	}
	return GroupOther
}

// Classifier memoizes ClassifyDish for the lifetime of one request.
type Classifier struct {
	groups map[int]DishGroup
}

func NewClassifier() *Classifier {
	return &Classifier{groups: make(map[int]DishGroup)}
}

func (c *Classifier) Group(d domain.Dish) DishGroup {
	if g, ok := c.groups[d.ID]; ok {
		return g
	}
	g := ClassifyDish(d)
	c.groups[d.ID] = g
	return g
}

// foldText lower-cases s and strips Vietnamese diacritics so "Tráng miệng" matches "trang mieng".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(s)
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "_", " ")
	return strings.ReplaceAll(folded, "-", " ")
}
