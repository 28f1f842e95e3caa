package repo

import (
	"strings"
)

// Category classifies a source file by its architectural role.
type Category string

const (
	CategoryController    Category = "Controller"
	CategoryService       Category = "Service"
	CategoryDAO           Category = "DAO"
	CategoryModel         Category = "Model"
	CategoryConfiguration Category = "Configuration"
	CategoryApplication   Category = "Application"
	CategoryUtility       Category = "Utility"
)

// String returns the category name.
func (c Category) String() string { return string(c) }

// Categorize classifies a source file using naming conventions and the
// annotations found in its leading lines. Heuristic, not definitive: a
// file that matches nothing is a Utility.
func Categorize(path, head string) Category {
	name := Stem(path)

	switch {
	case strings.Contains(name, "Controller") ||
		strings.Contains(head, "@Controller") ||
		strings.Contains(head, "@RestController"):
		return CategoryController
	case strings.Contains(name, "Service") || strings.Contains(head, "@Service"):
		return CategoryService
	case strings.Contains(name, "Repository") ||
		strings.Contains(name, "DAO") ||
		strings.Contains(head, "@Repository"):
		return CategoryDAO
	case strings.Contains(name, "Entity") || strings.Contains(head, "@Entity"):
		return CategoryModel
	case strings.Contains(name, "Config") || strings.Contains(head, "@Configuration"):
		return CategoryConfiguration
	case strings.Contains(name, "Application"):
		return CategoryApplication
	default:
		return CategoryUtility
	}
}
