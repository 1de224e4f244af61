package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminDto "github.com/tosinajy/carrier-code-verify/internal/application/admin/dto"
	mappingDto "github.com/tosinajy/carrier-code-verify/internal/application/mapping/dto"
	mappingUsecases "github.com/tosinajy/carrier-code-verify/internal/application/mapping/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/http/handlers/testutil"
	sharedErrors "github.com/tosinajy/carrier-code-verify/internal/shared/errors"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

func TestApprovalHandler_List(t *testing.T) {
	naicID := uint(9)
	pending := &mockListPendingUC{result: []*adminDto.PayerDTO{
		{PayerID: 3, PayerName: "Aetna", NaicID: &naicID, Cocode: "60054", MappingStatus: "pending"},
	}}
	h := NewApprovalHandler(pending, &mockProcessApprovalsUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/approvals")
	testutil.SetFlashCookie(c, utils.FlashSuccess, "Items approved.")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.PageResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Flash)
	assert.Equal(t, "Items approved.", resp.Flash.Message)

	var data struct {
		Items []*adminDto.PayerDTO `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "60054", data.Items[0].Cocode)
}

func TestApprovalHandler_Process(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		result       *mappingDto.ProcessApprovalsResult
		err          error
		wantIDs      []uint
		wantAction   string
		wantCategory utils.FlashCategory
		wantMessage  string
	}{
		{
			name:         "approve",
			form:         url.Values{"action": {"approve"}, "payer_ids": {"1", "2"}},
			result:       &mappingDto.ProcessApprovalsResult{Action: "approve", Updated: 2},
			wantIDs:      []uint{1, 2},
			wantAction:   "approve",
			wantCategory: utils.FlashSuccess,
			wantMessage:  "Items approved.",
		},
		{
			name:         "reject skips junk ids",
			form:         url.Values{"action": {"reject"}, "payer_ids": {"4", "x", "0"}},
			result:       &mappingDto.ProcessApprovalsResult{Action: "reject", Updated: 1},
			wantIDs:      []uint{4},
			wantAction:   "reject",
			wantCategory: utils.FlashSuccess,
			wantMessage:  "Items rejected.",
		},
		{
			name:         "approve with payers lacking naic",
			form:         url.Values{"action": {"approve"}, "payer_ids": {"1", "5"}},
			result:       &mappingDto.ProcessApprovalsResult{Action: "approve", Updated: 1, Blocked: []uint{5}},
			wantIDs:      []uint{1, 5},
			wantAction:   "approve",
			wantCategory: utils.FlashWarning,
			wantMessage:  "Items approved. 1 item(s) without a NAIC were not approved.",
		},
		{
			name:         "empty selection",
			form:         url.Values{"action": {"approve"}},
			err:          sharedErrors.NewSelectionError("No items selected."),
			wantIDs:      []uint{},
			wantAction:   "approve",
			wantCategory: utils.FlashWarning,
			wantMessage:  "No items selected.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got mappingUsecases.ProcessApprovalsCommand
			process := &mockProcessApprovalsUC{
				ExecuteFunc: func(_ context.Context, cmd mappingUsecases.ProcessApprovalsCommand) (*mappingDto.ProcessApprovalsResult, error) {
					got = cmd
					return tt.result, tt.err
				},
			}
			h := NewApprovalHandler(&mockListPendingUC{}, process, logger.NewNopLogger())

			c, w := testutil.NewFormContext("/admin/approvals/process", tt.form)
			testutil.SetAuthContext(c, 1, "steward")
			h.Process(c)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assertLocation(t, w, pathApprovals)
			assert.Equal(t, tt.wantIDs, got.PayerIDs)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, "steward", got.ChangedBy)

			flash := testutil.Flash(w)
			require.NotNil(t, flash)
			assert.Equal(t, tt.wantCategory, flash.Category)
			assert.Equal(t, tt.wantMessage, flash.Message)
		})
	}
}
