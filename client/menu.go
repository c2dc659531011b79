package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SRAJAN1405/hotel/models"
)

const (
	menuCacheKey       = "menuItemsCache"
	menuCacheDuration  = time.Hour
	categoryDisplayCap = 10
)

// MenuCategoryGroup is the display grouping of the catalog: one entry per
// category, at most categoryDisplayCap items each.
type MenuCategoryGroup struct {
	Category string            `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

// MenuClient fetches the menu catalog and caches the grouped result locally
// for an hour. The cache is keyed globally, so changing request parameters
// does not invalidate it.
type MenuClient struct {
	baseURL    string
	httpClient *http.Client
	storage    Storage

	now func() time.Time
}

func NewMenuClient(baseURL string, storage Storage) *MenuClient {
	return &MenuClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		storage: storage,
		now:     time.Now,
	}
}

type menuCacheEntry struct {
	Data      []MenuCategoryGroup `json:"data"`
	Timestamp int64               `json:"timestamp"`
}

// FetchMenu returns the grouped catalog, reusing the local cache when it is
// less than an hour old.
func (mc *MenuClient) FetchMenu() ([]MenuCategoryGroup, error) {
	if raw, ok := mc.storage.Get(menuCacheKey); ok {
		var cached menuCacheEntry
		if err := json.Unmarshal(raw, &cached); err == nil {
			if mc.now().Sub(time.UnixMilli(cached.Timestamp)) < menuCacheDuration {
				return cached.Data, nil
			}
		}
	}

	// The server returns the full catalog regardless; page/limit are kept on
	// the wire for compatibility with the deployed client.
	url := fmt.Sprintf("%s/api/menu/dishes?page=1&limit=20", mc.baseURL)
	resp, err := mc.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching menu: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch menu items: %s", string(body))
	}

	var listResp struct {
		Success   bool              `json:"success"`
		MenuItems []models.MenuItem `json:"menuItems"`
	}
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}

	grouped := groupByCategory(listResp.MenuItems)

	entry := menuCacheEntry{
		Data:      grouped,
		Timestamp: mc.now().UnixMilli(),
	}
	if data, err := json.Marshal(entry); err == nil {
		_ = mc.storage.Set(menuCacheKey, data)
	}

	return grouped, nil
}

// groupByCategory buckets dishes in the fixed category order and caps each
// bucket at the display limit. Empty categories are dropped.
func groupByCategory(items []models.MenuItem) []MenuCategoryGroup {
	buckets := make(map[string][]models.MenuItem)
	for _, item := range items {
		if len(buckets[item.Category]) < categoryDisplayCap {
			buckets[item.Category] = append(buckets[item.Category], item)
		}
	}

	grouped := make([]MenuCategoryGroup, 0, len(models.MenuCategories))
	for _, category := range models.MenuCategories {
		if dishes, ok := buckets[category]; ok {
			grouped = append(grouped, MenuCategoryGroup{
				Category: category,
				Items:    dishes,
			})
		}
	}
	return grouped
}
