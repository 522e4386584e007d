package catalog

import "strings"

// fallbackPlan используется для сервиса без собственного набора тарифов.
const fallbackPlan = "Premium"

// Product описывает стриминговый сервис и его тарифы.
type Product struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Plans []string `json:"plans"`
}

var products = []Product{
	{ID: "netflix", Name: "Netflix", Plans: []string{"Basic (720p)", "Standard (1080p)", "Premium (4K UHD)"}},
	{ID: "disney", Name: "Disney+", Plans: []string{"Basic (With Ads)", "Premium (No Ads)", "Duo Basic (Disney+ & Hulu)", "Duo Premium (Disney+ & Hulu)"}},
	{ID: "hulu", Name: "Hulu", Plans: []string{"Hulu (With Ads)", "Hulu (No Ads)", "Hulu + Live TV"}},
	{ID: "nba", Name: "NBA LP", Plans: []string{"Team Pass", "League Pass", "League Pass Premium"}},
	{ID: "youtube", Name: "YouTube", Plans: []string{"Individual", "Family", "Duo"}},
	{ID: "dazn", Name: "DAZN", Plans: []string{"Monthly Saver", "Flexible Pass", "Annual Super Saver"}},
	{ID: "spotify", Name: "Spotify", Plans: []string{"Individual", "Duo", "Family", "Student"}},
	{ID: "prime", Name: "Prime Video", Plans: []string{"Prime Video Member", "Amazon Prime (Full Benefits)"}},
	{ID: "shahid", Name: "Shahid VIP", Plans: []string{"VIP Mobile", "VIP", "VIP Sport", "VIP Ultimate"}},
}

var (
	countryIndex = make(map[string]struct{}, len(countries))
	productIndex = make(map[string]Product, len(products))
)

func init() {
	for _, c := range countries {
		countryIndex[c.Code] = struct{}{}
	}
	for _, p := range products {
		productIndex[p.Name] = p
	}
}

// Countries возвращает справочник регионов в порядке отображения.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// Products возвращает список сервисов с их тарифами.
func Products() []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		plans := make([]string, len(p.Plans))
		copy(plans, p.Plans)
		out = append(out, Product{ID: p.ID, Name: p.Name, Plans: plans})
	}
	return out
}

// Plans возвращает тарифы сервиса или nil для неизвестного сервиса.
func Plans(service string) []string {
	p, ok := productIndex[service]
	if !ok {
		return nil
	}
	plans := make([]string, len(p.Plans))
	copy(plans, p.Plans)
	return plans
}

// DefaultPlan возвращает тариф, выбираемый при переключении на сервис.
func DefaultPlan(service string) string {
	if p, ok := productIndex[service]; ok && len(p.Plans) > 0 {
		return p.Plans[0]
	}
	return fallbackPlan
}

// IsRegion проверяет, что код региона есть в справочнике. Регистр не учитывается.
func IsRegion(code string) bool {
	_, ok := countryIndex[strings.ToUpper(code)]
	return ok
}

// IsService проверяет, что сервис есть в каталоге.
func IsService(name string) bool {
	_, ok := productIndex[name]
	return ok
}

// IsPlan проверяет, что тариф принадлежит набору тарифов сервиса.
func IsPlan(service, plan string) bool {
	p, ok := productIndex[service]
	if !ok {
		return false
	}
	for _, candidate := range p.Plans {
		if candidate == plan {
			return true
		}
	}
	return false
}
