package v1

import (
	"fmt"
	"net/http"
	"time"

	"go-talenthub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	jobUC domain.JobUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &AdminHandler{jobUC: jobUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/jobs/export", handler.ExportJobs)
	}
}

// ExportJobs godoc
// @Summary      Export job postings (admin)
// @Description  Download the full posting collection as an XLSX spreadsheet
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Router       /admin/jobs/export [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportJobs(c *gin.Context) {
	data, err := h.jobUC.ExportJobsXLSX(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("jobs-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
