package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSessionExpired = errors.New("commerce session expired")
)

// Client talks to the external commerce backend. The backend routes requests
// through a single entry point with route-style query strings, so request
// URLs look like <base>/sale/addPackage&api_token=<token>. All writes are
// form-urlencoded POSTs.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) endpoint(route, token string) string {
	u := c.baseURL + "/" + route
	if token != "" {
		u += "&api_token=" + url.QueryEscape(token)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, route, token string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(route, token), body)
	if err != nil {
		return err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("commerce api error (%d): %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if rawOut, ok := out.(*[]byte); ok {
		*rawOut = raw
		return nil
	}
	return json.Unmarshal(raw, out)
}

// checkStatus surfaces backend-reported failures that still arrive with 200.
func checkStatus(st Status) error {
	if !st.Success && st.Message != "" {
		return errors.New(st.Message)
	}
	if !st.Success {
		return errors.New("commerce api rejected the request")
	}
	return nil
}

// --------------------------------------------------
// Session
// --------------------------------------------------

// Login exchanges the fixed shop credentials for an api token.
func (c *Client) Login(ctx context.Context, username, key string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("key", key)

	var res struct {
		Success  flexBool `json:"success"`
		APIToken string   `json:"api_token"`
	}
	if err := c.do(ctx, http.MethodPost, "account/login", "", form, &res); err != nil {
		return "", err
	}
	if !bool(res.Success) || res.APIToken == "" {
		return "", errors.New("login rejected by commerce backend")
	}
	return res.APIToken, nil
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func (c *Client) GetCart(ctx context.Context, token string) (*Cart, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodGet, "sale/getCart", token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCart(raw)
}

func (c *Client) AddProduct(ctx context.Context, token, productID string, quantity int) error {
	form := url.Values{}
	form.Set("product_id", productID)
	form.Set("quantity", strconv.Itoa(quantity))

	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/addProduct", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) EditProduct(ctx context.Context, token, cartID string, quantity int) error {
	form := url.Values{}
	form.Set("id", cartID)
	form.Set("quantity", strconv.Itoa(quantity))

	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/editProduct", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) RemoveProduct(ctx context.Context, token, cartID string) error {
	form := url.Values{}
	form.Set("id", cartID)
	form.Set("quantity", "0")

	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/removeProduct", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

// AddExtra books a product onto the current package as a priced extra.
func (c *Client) AddExtra(ctx context.Context, token, productID string) error {
	form := url.Values{}
	form.Set("product_id", productID)

	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/addExtra", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

// AddPackage commits the configured package into the cart.
func (c *Client) AddPackage(ctx context.Context, token string) error {
	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/addPackage", token, url.Values{}, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) DeletePackage(ctx context.Context, token string) error {
	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/deletePackage", token, url.Values{}, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	var st Status
	if err := c.do(ctx, http.MethodPost, "sale/clearCart", token, url.Values{}, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (c *Client) GetMenuContent(ctx context.Context, token string, menuID int) (*Menu, error) {
	form := url.Values{}
	form.Set("menu", strconv.Itoa(menuID))

	var raw []byte
	if err := c.do(ctx, http.MethodPost, "catalog/getMenuContent", token, form, &raw); err != nil {
		return nil, err
	}

	var res rawMenu
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return normalizeMenu(&res), nil
}

func (c *Client) GetCategories(ctx context.Context, token string) ([]Category, error) {
	var res struct {
		Categories []struct {
			CategoryID flexString `json:"category_id"`
			Name       string     `json:"name"`
		} `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "catalog/getCategories", token, nil, &res); err != nil {
		return nil, err
	}

	out := make([]Category, 0, len(res.Categories))
	for _, rc := range res.Categories {
		out = append(out, Category{CategoryID: string(rc.CategoryID), Name: rc.Name})
	}
	return out, nil
}

func (c *Client) GetPackages(ctx context.Context, token string) ([]Package, error) {
	var res struct {
		Packages []struct {
			ID    flexInt     `json:"id"`
			Name  string      `json:"name"`
			Price flexDecimal `json:"price"`
			Image string      `json:"image"`
		} `json:"packages"`
	}
	if err := c.do(ctx, http.MethodGet, "catalog/getPackages", token, nil, &res); err != nil {
		return nil, err
	}

	out := make([]Package, 0, len(res.Packages))
	for _, rp := range res.Packages {
		out = append(out, Package{
			ID:    int(rp.ID),
			Name:  rp.Name,
			Price: decimalOf(rp.Price),
			Image: rp.Image,
		})
	}
	return out, nil
}

func (c *Client) GetProductsByCategory(ctx context.Context, token, categoryID string) ([]Product, error) {
	form := url.Values{}
	form.Set("categoryId", categoryID)

	var res struct {
		Products []struct {
			ProductID flexString  `json:"product_id"`
			Name      string      `json:"name"`
			Thumb     string      `json:"thumb"`
			Price     flexDecimal `json:"price"`
			LeadTime  string      `json:"leadTime"`
		} `json:"products"`
	}
	if err := c.do(ctx, http.MethodPost, "catalog/getProductsByCategory", token, form, &res); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(res.Products))
	for _, rp := range res.Products {
		out = append(out, Product{
			ProductID:  string(rp.ProductID),
			Name:       rp.Name,
			Thumb:      rp.Thumb,
			Price:      decimalOf(rp.Price),
			CategoryID: categoryID,
			LeadTime:   rp.LeadTime,
		})
	}
	return out, nil
}

func (c *Client) GetProductByID(ctx context.Context, token, productID string) (*Product, error) {
	form := url.Values{}
	form.Set("productId", productID)

	var res struct {
		Products []struct {
			ProductID flexString  `json:"product_id"`
			Name      string      `json:"name"`
			Thumb     string      `json:"thumb"`
			Price     flexDecimal `json:"price"`
			LeadTime  string      `json:"leadTime"`
		} `json:"products"`
	}
	if err := c.do(ctx, http.MethodPost, "catalog/getProductById", token, form, &res); err != nil {
		return nil, err
	}
	if len(res.Products) == 0 {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	rp := res.Products[0]
	return &Product{
		ProductID: string(rp.ProductID),
		Name:      rp.Name,
		Thumb:     rp.Thumb,
		Price:     decimalOf(rp.Price),
		LeadTime:  rp.LeadTime,
	}, nil
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

func (c *Client) GetPaymentMethods(ctx context.Context, token string) ([]PaymentMethod, error) {
	var res struct {
		PaymentMethods map[string]struct {
			Title string `json:"title"`
		} `json:"payment_methods"`
	}
	if err := c.do(ctx, http.MethodGet, "checkout/getPaymentMethods", token, nil, &res); err != nil {
		return nil, err
	}

	out := make([]PaymentMethod, 0, len(res.PaymentMethods))
	for code, pm := range res.PaymentMethods {
		out = append(out, PaymentMethod{Code: code, Title: pm.Title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (c *Client) SetPaymentMethod(ctx context.Context, token, method string) error {
	form := url.Values{}
	form.Set("payment_method", method)

	var st Status
	if err := c.do(ctx, http.MethodPost, "checkout/setPaymentMethod", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) SetShippingAddress(ctx context.Context, token string, addr Address) error {
	var st Status
	if err := c.do(ctx, http.MethodPost, "checkout/setShippingAddress", token, addressForm(addr), &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) SetPaymentAddress(ctx context.Context, token string, addr Address) error {
	var st Status
	if err := c.do(ctx, http.MethodPost, "checkout/setPaymentAddress", token, addressForm(addr), &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func (c *Client) GetShippingMethods(ctx context.Context, token string) ([]ShippingMethod, error) {
	var res struct {
		ShippingMethods map[string]struct {
			Title string `json:"title"`
			Cost  string `json:"cost"`
		} `json:"shipping_methods"`
	}
	if err := c.do(ctx, http.MethodGet, "checkout/getShippingMethods", token, nil, &res); err != nil {
		return nil, err
	}

	out := make([]ShippingMethod, 0, len(res.ShippingMethods))
	for code, sm := range res.ShippingMethods {
		out = append(out, ShippingMethod{Code: code, Title: sm.Title, Cost: sm.Cost})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (c *Client) SetShippingMethod(ctx context.Context, token, method string) error {
	form := url.Values{}
	form.Set("shipping_method", method)

	var st Status
	if err := c.do(ctx, http.MethodPost, "checkout/setShippingMethod", token, form, &st); err != nil {
		return err
	}
	return checkStatus(st)
}

func addressForm(addr Address) url.Values {
	form := url.Values{}
	form.Set("firstname", addr.Firstname)
	form.Set("lastname", addr.Lastname)
	form.Set("address_1", addr.Address1)
	form.Set("city", addr.City)
	form.Set("country_id", addr.CountryID)
	form.Set("zone_id", addr.ZoneID)
	if addr.ShippingAddressID != "" {
		form.Set("shipping_address_id", addr.ShippingAddressID)
	}
	if addr.PaymentAddressID != "" {
		form.Set("payment_address_id", addr.PaymentAddressID)
	}
	return form
}
