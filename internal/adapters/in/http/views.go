package http

import (
	"time"

	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/core/domain/model/vendor"
)

// submittedLayout formats the vendor list's submission date.
const submittedLayout = "Jan 2, 2006"

// productionStepsJSON lists the steps in display order.
type productionStepsJSON struct {
	SampleConfirmation  string `json:"sampleConfirmation"`
	FabricInhoused      string `json:"fabricInhoused"`
	FabricQualityCheck  string `json:"fabricQualityCheck"`
	Production          string `json:"production"`
	Packaging           string `json:"packaging"`
	QualityCheck        string `json:"qualityCheck"`
	OutForDelivery      string `json:"outForDelivery"`
	ConfirmPaymentTerms string `json:"confirmPaymentTerms"`
}

func stepsJSON(steps order.Steps) productionStepsJSON {
	get := func(name order.StepName) string {
		status, err := steps.Get(name)
		if err != nil {
			return order.UnknownStepStatus.String()
		}
		return status.String()
	}
	return productionStepsJSON{
		SampleConfirmation:  get(order.SampleConfirmation),
		FabricInhoused:      get(order.FabricInhoused),
		FabricQualityCheck:  get(order.FabricQualityCheck),
		Production:          get(order.Production),
		Packaging:           get(order.Packaging),
		QualityCheck:        get(order.QualityCheck),
		OutForDelivery:      get(order.OutForDelivery),
		ConfirmPaymentTerms: get(order.ConfirmPaymentTerms),
	}
}

type trackingJSON struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	Status          string              `json:"status"`
	ProductionSteps productionStepsJSON `json:"productionSteps"`
}

func trackingFromView(v queries.GetOrderStatusQueryResponse) trackingJSON {
	return trackingJSON{
		ID:              v.ID.String(),
		OrderNumber:     v.OrderNumber,
		Status:          v.Status.String(),
		ProductionSteps: stepsJSON(v.Steps),
	}
}

type orderJSON struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	QuoteID         string              `json:"quoteId"`
	Status          string              `json:"status"`
	PieceCount      int                 `json:"pieceCount"`
	UnitPrice       float64             `json:"unitPrice"`
	LeadTime        string              `json:"leadTime"`
	DesignImageURL  string              `json:"designImageUrl,omitempty"`
	ProductionSteps productionStepsJSON `json:"productionSteps"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func orderFromAggregate(o *order.Order) orderJSON {
	terms := o.Terms()
	return orderJSON{
		ID:              o.ID().String(),
		OrderNumber:     o.Number().String(),
		QuoteID:         o.QuoteID().String(),
		Status:          o.Status().String(),
		PieceCount:      terms.PieceCount,
		UnitPrice:       terms.UnitPrice.Float64(),
		LeadTime:        terms.LeadTime,
		DesignImageURL:  terms.DesignImageURL,
		ProductionSteps: stepsJSON(o.Steps()),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderFromView(v queries.GetOrdersQueryResponse) orderJSON {
	return orderJSON{
		ID:              v.ID.String(),
		OrderNumber:     v.OrderNumber,
		QuoteID:         v.QuoteID.String(),
		Status:          v.Status.String(),
		PieceCount:      v.PieceCount,
		UnitPrice:       v.UnitPrice.Float64(),
		LeadTime:        v.LeadTime,
		DesignImageURL:  v.DesignImageURL,
		ProductionSteps: stepsJSON(v.Steps),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type quoteJSON struct {
	ID                string    `json:"id"`
	ShippingAddress   string    `json:"shippingAddress"`
	Quantity          int       `json:"quantity"`
	LeadTime          string    `json:"leadTime"`
	TargetPrice       float64   `json:"targetPrice"`
	FabricComposition string    `json:"fabricComposition"`
	GSM               string    `json:"gsm"`
	OrderNotes        string    `json:"orderNotes,omitempty"`
	OrderSample       bool      `json:"orderSample"`
	SampleCount       int       `json:"sampleCount"`
	Techpack          string    `json:"techpack,omitempty"`
	ProductImages     []string  `json:"productImages"`
	ColorSwatches     []string  `json:"colorSwatches"`
	Fabrics           []string  `json:"fabrics"`
	Miscellaneous     []string  `json:"miscellaneous"`
	Status            string    `json:"status"`
	Comments          string    `json:"comments"`
	CreatedAt         time.Time `json:"createdAt"`
}

func newQuoteJSON(
	id kernel.UUID,
	d quote.Details,
	f quote.Files,
	status quote.Status,
	comments string,
	createdAt time.Time,
) quoteJSON {
	return quoteJSON{
		ID:                id.String(),
		ShippingAddress:   d.ShippingAddress,
		Quantity:          d.Quantity,
		LeadTime:          d.LeadTime,
		TargetPrice:       d.TargetPrice.Float64(),
		FabricComposition: d.FabricComposition,
		GSM:               d.GSM,
		OrderNotes:        d.OrderNotes,
		OrderSample:       d.OrderSample,
		SampleCount:       d.SampleCount,
		Techpack:          f.Techpack,
		ProductImages:     nonNil(f.ProductImages),
		ColorSwatches:     nonNil(f.ColorSwatches),
		Fabrics:           nonNil(f.Fabrics),
		Miscellaneous:     nonNil(f.Miscellaneous),
		Status:            status.String(),
		Comments:          comments,
		CreatedAt:         createdAt,
	}
}

func quoteFromAggregate(q *quote.Quote) quoteJSON {
	return newQuoteJSON(q.ID(), q.Details(), q.Files(), q.Status(), q.Comments(), q.CreatedAt())
}

func quoteFromView(v queries.QuoteView) quoteJSON {
	return newQuoteJSON(v.ID, v.Details, v.Files, v.Status, v.Comments, v.CreatedAt)
}

type quoteStatsJSON struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type quoteListJSON struct {
	Quotes []quoteJSON    `json:"quotes"`
	Stats  quoteStatsJSON `json:"stats"`
}

func quoteListFromView(v queries.GetQuotesByStatusQueryResponse) quoteListJSON {
	list := quoteListJSON{
		Quotes: make([]quoteJSON, 0, len(v.Quotes)),
		Stats: quoteStatsJSON{
			Total:    v.Stats.Total,
			Pending:  v.Stats.Pending,
			Accepted: v.Stats.Accepted,
			Rejected: v.Stats.Rejected,
		},
	}
	for _, q := range v.Quotes {
		list.Quotes = append(list.Quotes, quoteFromView(q))
	}
	return list
}

type acceptedQuoteJSON struct {
	Quote        quoteJSON `json:"quote"`
	Order        orderJSON `json:"order"`
	OrderCreated bool      `json:"orderCreated"`
}

// vendorSummaryJSON is one row of the vendor verification table.
type vendorSummaryJSON struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Status        string            `json:"status"`
	Submitted     string            `json:"submitted"`
	Documents     string            `json:"documents"`
	ContactPerson string            `json:"contactPerson"`
	ContactEmail  string            `json:"contactEmail"`
	ContactPhone  string            `json:"contactPhone"`
	GSTNumber     string            `json:"gstNumber"`
	PANNumber     string            `json:"panNumber"`
	Country       string            `json:"country"`
	FirmType      string            `json:"firmType"`
	DocumentURLs  map[string]string `json:"documentUrls"`
}

func vendorSummaryFromView(v queries.VendorView) vendorSummaryJSON {
	documents := "No files"
	if v.HasDocuments() {
		documents = "View Files"
	}
	p := v.Profile
	return vendorSummaryJSON{
		ID:            v.ID.String(),
		Name:          p.Company.Name,
		Status:        string(v.Verification),
		Submitted:     v.CreatedAt.Format(submittedLayout),
		Documents:     documents,
		ContactPerson: p.PrimaryContact.FullName(),
		ContactEmail:  p.PrimaryContact.Email,
		ContactPhone:  p.PrimaryContact.PhoneNumber,
		GSTNumber:     p.Documents.GSTNumber,
		PANNumber:     p.Documents.PANNumber,
		Country:       p.Address.Country,
		FirmType:      p.Company.FirmType,
		DocumentURLs:  v.DocumentURLs,
	}
}

// vendorDetailJSON flattens the submitted profile next to the workflow fields.
type vendorDetailJSON struct {
	ID string `json:"id"`
	vendor.Profile
	Status       string            `json:"status"`
	Verification string            `json:"verification"`
	DocumentURLs map[string]string `json:"documentUrls"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func vendorDetailFromView(v queries.VendorView) vendorDetailJSON {
	return vendorDetailJSON{
		ID:           v.ID.String(),
		Profile:      v.Profile,
		Status:       v.Status.String(),
		Verification: string(v.Verification),
		DocumentURLs: v.DocumentURLs,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type vendorStatusJSON struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Verification string `json:"verification"`
}

type companyJSON struct {
	ID                    string `json:"id"`
	RegisteredCompanyName string `json:"registeredCompanyName"`
	GSTTaxID              string `json:"gstTaxId"`
	company.Profile
	HasBeenVerified bool       `json:"hasBeenVerified"`
	Status          string     `json:"status"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy      string     `json:"verifiedBy,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func newCompanyJSON(
	id kernel.UUID,
	name, gstTaxID string,
	profile company.Profile,
	v company.Verification,
	createdAt, updatedAt time.Time,
) companyJSON {
	return companyJSON{
		ID:                    id.String(),
		RegisteredCompanyName: name,
		GSTTaxID:              gstTaxID,
		Profile:               profile,
		HasBeenVerified:       v.HasBeenVerified,
		Status:                v.Status.String(),
		VerifiedAt:            v.VerifiedAt,
		VerifiedBy:            v.VerifiedBy,
		RejectionReason:       v.RejectionReason,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}

func companyFromAggregate(c *company.Company) companyJSON {
	return newCompanyJSON(c.ID(), c.RegisteredCompanyName(), c.GSTTaxID(), c.Profile(), c.Verification(),
		c.CreatedAt(), c.UpdatedAt())
}

func companyFromView(v queries.CompanyView) companyJSON {
	return newCompanyJSON(v.ID, v.RegisteredCompanyName, v.GSTTaxID, v.Profile, v.Verification, v.CreatedAt, v.UpdatedAt)
}

type productJSON struct {
	ID               string              `json:"id"`
	ProductID        string              `json:"productId"`
	ProductName      string              `json:"productName"`
	Description      string              `json:"description"`
	Category         string              `json:"category"`
	PriceRange       string              `json:"priceRange"`
	QuantityPerOrder string              `json:"quantityPerOrder"`
	ProductImages    []string            `json:"productImages"`
	MeasurementSpecs []string            `json:"measurementSpecs"`
	Attributes       []map[string]string `json:"attributes"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func newProductJSON(
	id kernel.UUID,
	d product.Details,
	m product.Media,
	attributes []product.Attribute,
	createdAt, updatedAt time.Time,
) productJSON {
	attrs := make([]map[string]string, 0, len(attributes))
	for _, a := range attributes {
		attrs = append(attrs, a.Fields)
	}
	return productJSON{
		ID:               id.String(),
		ProductID:        d.Code,
		ProductName:      d.Name,
		Description:      d.Description,
		Category:         d.Category,
		PriceRange:       d.PriceRange,
		QuantityPerOrder: d.QuantityPerOrder,
		ProductImages:    nonNil(m.ProductImages),
		MeasurementSpecs: nonNil(m.MeasurementSpecs),
		Attributes:       attrs,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func productFromAggregate(p *product.Product) productJSON {
	return newProductJSON(p.ID(), p.Details(), p.Media(), p.Attributes(), p.CreatedAt(), p.UpdatedAt())
}

func productFromView(v queries.ProductView) productJSON {
	return newProductJSON(v.ID, v.Details, v.Media, v.Attributes, v.CreatedAt, v.UpdatedAt)
}

type mediaJSON struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapSlice[In, Out any](in []In, f func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
