package dto

import (
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/domain/audit"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/shared/mapper"
)

// DirectoryEntryDTO is one row of the public carrier grid.
type DirectoryEntryDTO struct {
	CarrierID      uint   `json:"carrier_id"`
	PayerName      string `json:"payer_name"`
	PayerCode      string `json:"payer_code"`
	Cocode         string `json:"cocode"`
	ClearingHouses string `json:"clearing_houses"`
}

type DirectoryPageDTO struct {
	Items      []*DirectoryEntryDTO `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
	Search     string               `json:"search"`
}

type SearchHitDTO struct {
	CarrierID   uint   `json:"carrier_id"`
	PayerName   string `json:"payer_name"`
	PayerCode   string `json:"payer_code"`
	Cocode      string `json:"cocode"`
	CompanyName string `json:"company_name"`
}

// SuggestionDTO feeds the autocomplete widget.
type SuggestionDTO struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// NaicOptionDTO is one choice of the admin NAIC picker.
type NaicOptionDTO struct {
	Value uint   `json:"value"`
	Name  string `json:"name"`
	Text  string `json:"text"`
}

type AuditEntryDTO struct {
	Action    string         `json:"action"`
	ChangedBy string         `json:"changed_by"`
	ChangedAt time.Time      `json:"changed_at"`
	Changes   map[string]any `json:"changes"`
}

type CarrierDetailDTO struct {
	CarrierID     uint             `json:"carrier_id"`
	PayerID       uint             `json:"payer_id"`
	PayerName     string           `json:"payer_name"`
	PayerCode     string           `json:"payer_code"`
	ClearingHouse string           `json:"clearing_house"`
	MappingStatus string           `json:"mapping_status"`
	NaicID        uint             `json:"naic_id"`
	Cocode        string           `json:"cocode"`
	CompanyName   string           `json:"company_name"`
	History       []*AuditEntryDTO `json:"history"`
}

type LandingCountsDTO struct {
	Carriers int64 `json:"carriers"`
	Payers   int64 `json:"payers"`
	Naic     int64 `json:"naic"`
}

type LandingPageDTO struct {
	ContentHTML string           `json:"content_html"`
	Counts      LandingCountsDTO `json:"counts"`
}

func ToDirectoryEntryDTO(e *directory.Entry) *DirectoryEntryDTO {
	return &DirectoryEntryDTO{
		CarrierID:      e.CarrierID,
		PayerName:      e.PayerName,
		PayerCode:      e.PayerCode,
		Cocode:         e.Cocode,
		ClearingHouses: e.ClearingHouses,
	}
}

func ToSearchHitDTO(h *directory.SearchHit) *SearchHitDTO {
	return &SearchHitDTO{
		CarrierID:   h.CarrierID,
		PayerName:   h.PayerName,
		PayerCode:   h.PayerCode,
		Cocode:      h.Cocode,
		CompanyName: h.CompanyName,
	}
}

func ToNaicOptionDTO(r *naic.Record) *NaicOptionDTO {
	return &NaicOptionDTO{
		Value: r.ID(),
		Name:  r.DisplayName(),
		Text:  r.Cocode(),
	}
}

func ToAuditEntryDTO(e *audit.Entry) *AuditEntryDTO {
	return &AuditEntryDTO{
		Action:    e.Action,
		ChangedBy: e.ChangedBy,
		ChangedAt: e.ChangedAt,
		Changes:   e.Changes,
	}
}

func ToDirectoryEntryDTOList(entries []*directory.Entry) []*DirectoryEntryDTO {
	return mapper.MapSliceNonNil(entries, ToDirectoryEntryDTO)
}

func ToSearchHitDTOList(hits []*directory.SearchHit) []*SearchHitDTO {
	return mapper.MapSliceNonNil(hits, ToSearchHitDTO)
}

func ToNaicOptionDTOList(records []*naic.Record) []*NaicOptionDTO {
	return mapper.MapSliceNonNil(records, ToNaicOptionDTO)
}

func ToAuditEntryDTOList(entries []*audit.Entry) []*AuditEntryDTO {
	return mapper.MapSliceNonNil(entries, ToAuditEntryDTO)
}
