package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upravdom/internal/application/catalog/usecases"
	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/utils"
)

type CatalogHandler struct {
	listDefectsUC        usecases.ListDefectsExecutor
	listAddressesUC      usecases.ListAddressesExecutor
	getAddressUC         usecases.GetAddressExecutor
	listImplOrgsUC       usecases.ListImplementingOrganizationsExecutor
	listWorkTypesUC      usecases.ListWorkPerformedTypesExecutor
	listSecurityEventsUC usecases.ListSecurityEventsExecutor
	listRefusalsUC       usecases.ListRefusalReasonsExecutor
}

func NewCatalogHandler(
	listDefectsUC usecases.ListDefectsExecutor,
	listAddressesUC usecases.ListAddressesExecutor,
	getAddressUC usecases.GetAddressExecutor,
	listImplOrgsUC usecases.ListImplementingOrganizationsExecutor,
	listWorkTypesUC usecases.ListWorkPerformedTypesExecutor,
	listSecurityEventsUC usecases.ListSecurityEventsExecutor,
	listRefusalsUC usecases.ListRefusalReasonsExecutor,
) *CatalogHandler {
	return &CatalogHandler{
		listDefectsUC:        listDefectsUC,
		listAddressesUC:      listAddressesUC,
		getAddressUC:         getAddressUC,
		listImplOrgsUC:       listImplOrgsUC,
		listWorkTypesUC:      listWorkTypesUC,
		listSecurityEventsUC: listSecurityEventsUC,
		listRefusalsUC:       listRefusalsUC,
	}
}

// ListDefects handles GET /defects
func (h *CatalogHandler) ListDefects(c *gin.Context) {
	defects, err := h.listDefectsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, len(defects))
	for i, d := range defects {
		items[i] = gin.H{
			"id":                    d.ID,
			"category_name":         d.CategoryName,
			"category_code":         d.CategoryCode,
			"name":                  d.Name,
			"short_name":            d.ShortName,
			"code":                  d.Code,
			"urgency_category_name": d.UrgencyCategoryName,
			"urgency_category_code": d.UrgencyCategoryCode,
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListAddresses handles GET /addresses
func (h *CatalogHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.listAddressesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, len(addresses))
	for i, a := range addresses {
		items[i] = gin.H{
			"id":                 a.ID,
			"okrug_name":         a.OkrugName,
			"district_name":      a.DistrictName,
			"problem_address":    a.ProblemAddress,
			"unom":               a.UNOM,
			"ods_id":             a.ODSID,
			"management_company": a.ManagementCompany,
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetAddress handles GET /addresses/:id
func (h *CatalogHandler) GetAddress(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "address ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getAddressUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item := gin.H{
		"id":                 detail.Address.ID,
		"okrug_name":         detail.Address.OkrugName,
		"district_name":      detail.Address.DistrictName,
		"problem_address":    detail.Address.ProblemAddress,
		"unom":               detail.Address.UNOM,
		"ods_id":             detail.Address.ODSID,
		"management_company": detail.Address.ManagementCompany,
	}
	if detail.ODS != nil {
		item["ods_number"] = detail.ODS.Number
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

// ListImplementingOrganizations handles GET /implementing-organizations
func (h *CatalogHandler) ListImplementingOrganizations(c *gin.Context) {
	orgs, err := h.listImplOrgsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, len(orgs))
	for i, o := range orgs {
		items[i] = gin.H{
			"id":            o.ID,
			"name":          o.Name,
			"inn":           o.INN,
			"business_role": o.BusinessRole,
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListWorkPerformedTypes handles GET /work-performed-types
func (h *CatalogHandler) ListWorkPerformedTypes(c *gin.Context) {
	types, err := h.listWorkTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, len(types))
	for i, t := range types {
		items[i] = gin.H{
			"id":                  t.ID,
			"work_performed_type": t.WorkPerformedType,
			"defect_ids":          t.DefectIDs,
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListSecurityEvents handles GET /work-performed-types/:id/security-events
func (h *CatalogHandler) ListSecurityEvents(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "work performed type ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	events, err := h.listSecurityEventsUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]gin.H, len(events))
	for i, e := range events {
		items[i] = gin.H{
			"id":   e.ID,
			"name": e.Name,
			"term": e.Term,
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListRefusalReasons handles GET /refusal-reasons
func (h *CatalogHandler) ListRefusalReasons(c *gin.Context) {
	reasons, err := h.listRefusalsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	toItems := func(rs []*catalog.RefusalReason) []gin.H {
		items := make([]gin.H, len(rs))
		for i, r := range rs {
			items[i] = gin.H{
				"id":                r.ID,
				"name":              r.Name,
				"failure_reason_id": r.FailureReasonID,
			}
		}
		return items
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"executor":                  toItems(reasons.Executor),
		"implementing_organization": toItems(reasons.ImplementingOrganization),
	})
}
