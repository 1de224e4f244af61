package dto

import (
	"time"

	"github.com/tosinajy/carrier-code-verify/internal/domain/naic"
	"github.com/tosinajy/carrier-code-verify/internal/domain/payer"
	"github.com/tosinajy/carrier-code-verify/internal/domain/user"
	"github.com/tosinajy/carrier-code-verify/internal/shared/mapper"
)

type PayerDTO struct {
	PayerID       uint   `json:"payer_id"`
	PayerCode     string `json:"payer_code"`
	PayerName     string `json:"payer_name"`
	ClearingHouse string `json:"clearing_house"`
	NaicID        *uint  `json:"naic_id"`
	Cocode        string `json:"cocode,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	MappingStatus string `json:"mapping_status"`
}

type NaicDTO struct {
	NaicID      uint   `json:"naic_id"`
	Cocode      string `json:"cocode"`
	CompanyName string `json:"company_name"`
}

type UserDTO struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PageMeta repeats the list query so the screen can rebuild its filters.
type PageMeta struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	Search     string `json:"search"`
}

type PayerListDTO struct {
	Items  []*PayerDTO `json:"items"`
	Status string      `json:"status"`
	PageMeta
}

type NaicListDTO struct {
	Items []*NaicDTO `json:"items"`
	PageMeta
}

func ToPayerDTO(v *payer.View) *PayerDTO {
	return &PayerDTO{
		PayerID:       v.PayerID,
		PayerCode:     v.PayerCode,
		PayerName:     v.PayerName,
		ClearingHouse: v.ClearingHouse,
		NaicID:        v.NaicID,
		Cocode:        v.Cocode,
		CompanyName:   v.CompanyName,
		MappingStatus: v.Status.String(),
	}
}

func ToNaicDTO(r *naic.Record) *NaicDTO {
	return &NaicDTO{
		NaicID:      r.ID(),
		Cocode:      r.Cocode(),
		CompanyName: r.CompanyName(),
	}
}

func ToUserDTO(u *user.AdminUser) *UserDTO {
	return &UserDTO{
		UserID:    u.ID(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func ToPayerDTOList(views []*payer.View) []*PayerDTO {
	return mapper.MapSliceNonNil(views, ToPayerDTO)
}

func ToNaicDTOList(records []*naic.Record) []*NaicDTO {
	return mapper.MapSliceNonNil(records, ToNaicDTO)
}

func ToUserDTOList(users []*user.AdminUser) []*UserDTO {
	return mapper.MapSliceNonNil(users, ToUserDTO)
}
