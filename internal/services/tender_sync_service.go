package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"
	"github.com/tenderfindsa/tender-match-service/internal/repository"

	"go.uber.org/zap"
)

// TenderSyncService ingests tenders from the eTenders Portal OCDS API and
// normalizes them into catalog records.
type TenderSyncService struct {
	Repo   repository.TenderRepository
	Logger *zap.Logger
	APIURL string
	client *http.Client
}

// NewTenderSyncService creates a new TenderSyncService.
func NewTenderSyncService(repo repository.TenderRepository, logger *zap.Logger, apiURL string) *TenderSyncService {
	return &TenderSyncService{
		Repo:   repo,
		Logger: logger,
		APIURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// OCDS release shapes, reduced to the fields this service consumes.
type (
	etendersResponse struct {
		Results []etendersRelease `json:"results"`
	}

	etendersRelease struct {
		OCID   string         `json:"ocid"`
		Tender etendersTender `json:"tender"`
		Buyer  *etendersParty `json:"buyer"`
	}

	etendersTender struct {
		ID              string             `json:"id"`
		Title           string             `json:"title"`
		Description     string             `json:"description"`
		Status          string             `json:"status"`
		Value           *etendersValue     `json:"value"`
		TenderPeriod    *etendersPeriod    `json:"tenderPeriod"`
		ProcuringEntity *etendersParty     `json:"procuringEntity"`
		Classification  *etendersClass     `json:"classification"`
		Documents       []etendersDocument `json:"documents"`
	}

	etendersValue struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}

	etendersPeriod struct {
		StartDate *time.Time `json:"startDate"`
		EndDate   *time.Time `json:"endDate"`
	}

	etendersParty struct {
		Name string `json:"name"`
	}

	etendersClass struct {
		Description string `json:"description"`
	}

	etendersDocument struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
)

var (
	cidbPattern  = regexp.MustCompile(`(?i)cidb\s+(?:grade|level)\s+(\d+)`)
	bbbeePattern = regexp.MustCompile(`(?i)b-?bbee\s+(?:level\s+)?(\d+)`)
)

var provinceKeywords = []struct {
	keyword  string
	province string
}{
	{"gauteng", "Gauteng"},
	{"western cape", "Western Cape"},
	{"kwazulu-natal", "KwaZulu-Natal"},
	{"eastern cape", "Eastern Cape"},
	{"free state", "Free State"},
	{"limpopo", "Limpopo"},
	{"mpumalanga", "Mpumalanga"},
	{"north west", "North West"},
	{"northern cape", "Northern Cape"},
}

// SyncTenders pulls the current listing page from the eTenders API and
// upserts every release by OCID. Per-release failures are logged and skipped.
func (s *TenderSyncService) SyncTenders(ctx context.Context) error {
	s.Logger.Info("starting tender sync from eTenders Portal")

	releases, err := s.fetchTenders(ctx, 100, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch tenders: %w", err)
	}

	synced := 0
	for _, release := range releases {
		tender := normalizeRelease(release)
		if _, err := s.Repo.UpsertTenderByOCID(ctx, tender); err != nil {
			s.Logger.Error("failed to upsert tender",
				zap.String("ocid", release.OCID), zap.Error(err))
			continue
		}
		synced++
	}

	s.Logger.Info("tender sync completed",
		zap.Int("fetched", len(releases)), zap.Int("synced", synced))
	return nil
}

func (s *TenderSyncService) fetchTenders(ctx context.Context, limit, offset int) ([]etendersRelease, error) {
	url := fmt.Sprintf("%s/tenders?limit=%d&offset=%d&format=json", s.APIURL, limit, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eTenders API returned status %d", resp.StatusCode)
	}

	var payload etendersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode eTenders response: %w", err)
	}
	return payload.Results, nil
}

// normalizeRelease maps one OCDS release onto a catalog tender. Single-amount
// values become a ±20% band so value matching has a range to overlap with.
func normalizeRelease(release etendersRelease) models.Tender {
	department := ""
	if release.Buyer != nil {
		department = release.Buyer.Name
	} else if release.Tender.ProcuringEntity != nil {
		department = release.Tender.ProcuringEntity.Name
	}

	category := ""
	if release.Tender.Classification != nil {
		category = release.Tender.Classification.Description
	}

	var valueMin, valueMax *float64
	if release.Tender.Value != nil && release.Tender.Value.Amount > 0 {
		low := release.Tender.Value.Amount * 0.8
		high := release.Tender.Value.Amount * 1.2
		valueMin, valueMax = &low, &high
	}

	var closingDate, advertisedDate *time.Time
	if release.Tender.TenderPeriod != nil {
		closingDate = release.Tender.TenderPeriod.EndDate
		advertisedDate = release.Tender.TenderPeriod.StartDate
	}
	if advertisedDate == nil {
		now := time.Now().UTC()
		advertisedDate = &now
	}

	var documentURL *string
	if len(release.Tender.Documents) > 0 {
		documentURL = &release.Tender.Documents[0].URL
	}

	ocid := release.OCID
	status := mapTenderStatus(release.Tender.Status)

	return models.Tender{
		OCID:           &ocid,
		Title:          release.Tender.Title,
		Description:    release.Tender.Description,
		Department:     department,
		Category:       category,
		Province:       extractProvince(department),
		ValueMin:       valueMin,
		ValueMax:       valueMax,
		ClosingDate:    closingDate,
		AdvertisedDate: advertisedDate,
		Status:         status,
		Requirements:   extractRequirements(release.Tender.Description),
		DocumentURL:    documentURL,
		CIDBRequired:   extractCIDBRequirement(release.Tender.Description),
		BBBEERequired:  extractBBBEERequirement(release.Tender.Description),
		IsActive:       status == models.ActiveTender,
	}
}

// extractProvince infers the province from the procuring department's name,
// defaulting to National when no provincial keyword appears.
func extractProvince(departmentName string) string {
	lower := strings.ToLower(departmentName)
	for _, entry := range provinceKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.province
		}
	}
	return "National"
}

func mapTenderStatus(status string) models.TenderStatus {
	switch status {
	case "active":
		return models.ActiveTender
	case "complete":
		return models.ClosedTender
	case "unsuccessful", "cancelled":
		return models.CancelledTender
	default:
		return models.ActiveTender
	}
}

// extractRequirements pulls well-known compliance requirements out of the
// free-text description. The result is never nil; the requirements column is
// not nullable and a description without keywords stores an empty list.
func extractRequirements(description string) []string {
	requirements := []string{}
	lower := strings.ToLower(description)

	if strings.Contains(lower, "cidb") {
		requirements = append(requirements, "CIDB Registration Required")
	}
	if strings.Contains(lower, "b-bbee") || strings.Contains(lower, "bbbee") {
		requirements = append(requirements, "B-BBEE Certificate Required")
	}
	if strings.Contains(lower, "tax clearance") {
		requirements = append(requirements, "Tax Clearance Certificate")
	}
	if strings.Contains(lower, "professional indemnity") {
		requirements = append(requirements, "Professional Indemnity Insurance")
	}
	if strings.Contains(lower, "public liability") {
		requirements = append(requirements, "Public Liability Insurance")
	}

	return requirements
}

func extractCIDBRequirement(description string) *string {
	if m := cidbPattern.FindStringSubmatch(description); m != nil {
		requirement := "Grade " + m[1]
		return &requirement
	}
	if strings.Contains(strings.ToLower(description), "cidb") {
		requirement := "Required"
		return &requirement
	}
	return nil
}

func extractBBBEERequirement(description string) *string {
	if m := bbbeePattern.FindStringSubmatch(description); m != nil {
		requirement := "Level " + m[1]
		return &requirement
	}
	lower := strings.ToLower(description)
	if strings.Contains(lower, "b-bbee") || strings.Contains(lower, "bbbee") {
		requirement := "Required"
		return &requirement
	}
	return nil
}
