package catalog

type CategoryID string

const (
	CategoryCareer    CategoryID = "career"
	CategorySocial    CategoryID = "social"
	CategoryFinancial CategoryID = "financial"
	CategoryPhysical  CategoryID = "physical"
	CategoryCommunity CategoryID = "community"
)

type Category struct {
	ID    CategoryID `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
}

type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CategoryID  CategoryID `json:"category_id"`
	Description string     `json:"description,omitempty"`
}

var categories = []Category{
	{ID: CategoryCareer, Name: "Carreira", Color: "#4A90D9"},
	{ID: CategorySocial, Name: "Social", Color: "#E8A33D"},
	{ID: CategoryFinancial, Name: "Financeiro", Color: "#5CB85C"},
	{ID: CategoryPhysical, Name: "Físico", Color: "#D9534F"},
	{ID: CategoryCommunity, Name: "Comunidade", Color: "#9B59B6"},
}

var items = []Item{
	{ID: "work", Name: "Trabalho", CategoryID: CategoryCareer, Description: "Satisfação com o que você faz todos os dias"},
	{ID: "personal-growth", Name: "Desenvolvimento Pessoal", CategoryID: CategoryCareer, Description: "Aprendizado e crescimento profissional"},
	{ID: "family", Name: "Família", CategoryID: CategorySocial, Description: "Qualidade das relações familiares"},
	{ID: "friends", Name: "Amigos", CategoryID: CategorySocial, Description: "Amizades e vida social"},
	{ID: "finances", Name: "Finanças", CategoryID: CategoryFinancial, Description: "Segurança e organização financeira"},
	{ID: "financial-future", Name: "Futuro Financeiro", CategoryID: CategoryFinancial, Description: "Planejamento de longo prazo"},
	{ID: "health", Name: "Saúde", CategoryID: CategoryPhysical, Description: "Saúde física e energia para o dia a dia"},
	{ID: "leisure", Name: "Lazer", CategoryID: CategoryPhysical, Description: "Descanso e atividades de lazer"},
	{ID: "community", Name: "Comunidade", CategoryID: CategoryCommunity, Description: "Envolvimento com a comunidade"},
	{ID: "purpose", Name: "Propósito", CategoryID: CategoryCommunity, Description: "Sentido de contribuição e pertencimento"},
}

var itemsByID = buildItemIndex()

func buildItemIndex() map[string]Item {
	index := make(map[string]Item, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return index
}

// Categories возвращает категории колеса в порядке объявления.
func Categories() []Category {
	return categories
}

// Items возвращает все пункты каталога в порядке объявления.
func Items() []Item {
	return items
}

// ItemByID ищет пункт каталога по идентификатору.
func ItemByID(id string) (Item, bool) {
	item, ok := itemsByID[id]
	return item, ok
}

// ItemsByCategory возвращает пункты указанной категории в порядке каталога.
func ItemsByCategory(categoryID CategoryID) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		if item.CategoryID == categoryID {
			result = append(result, item)
		}
	}
	return result
}
