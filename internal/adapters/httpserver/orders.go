package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/sayadalsamak/store/internal/domain"
	"github.com/sayadalsamak/store/internal/usecase"
)

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var in usecase.CreateOrderInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, o)
}

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilterFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, total, err := s.orders.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, list, total, f.Page, f.PageSize)
}

func orderFilterFrom(r *http.Request) (domain.OrderFilter, error) {
	q := r.URL.Query()
	f := domain.OrderFilter{Query: q.Get("search")}
	if raw := q.Get("status"); raw != "" {
		st := domain.OrderStatus(raw)
		if !st.Valid() {
			return f, domain.Invalidf("invalid status %q", raw)
		}
		f.Status = st
	}
	if raw := q.Get("paymentStatus"); raw != "" {
		ps := domain.PaymentStatus(raw)
		if !ps.Valid() {
			return f, domain.Invalidf("invalid paymentStatus %q", raw)
		}
		f.PaymentStatus = ps
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PageSize, _ = strconv.Atoi(q.Get("limit"))
	return f, nil
}

func (s *Server) handleOrderGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		Status       domain.OrderStatus `json:"status"`
		CancelReason string             `json:"cancelReason"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.UpdateStatus(r.Context(), id, in.Status, in.CancelReason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}

func (s *Server) handleOrderPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.UpdatePaymentStatus(r.Context(), id, in.PaymentStatus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}

func (s *Server) handleOrderNotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in struct {
		AdminNotes string `json:"adminNotes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	o, err := s.orders.UpdateAdminNotes(r.Context(), id, in.AdminNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, o)
}

// handleOrderExport streams the filtered orders as an XLSX workbook.
func (s *Server) handleOrderExport(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilterFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	f.Page = 1
	f.PageSize = 1000
	var list []domain.Order
	for {
		batch, _, err := s.orders.List(r.Context(), f)
		if err != nil {
			writeError(w, err)
			return
		}
		list = append(list, batch...)
		if len(batch) < f.PageSize {
			break
		}
		f.Page++
	}

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	headers := []string{"Order #", "Date", "Customer", "Phone", "Governorate", "Status", "Payment", "Method", "Subtotal", "Discount", "Delivery", "Tax", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}
	for row, o := range list {
		values := []any{
			o.OrderNumber,
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.ShippingAddress.FullName,
			o.ShippingAddress.Phone,
			o.ShippingAddress.Governorate,
			string(o.Status),
			string(o.PaymentStatus),
			string(o.PaymentMethod),
			o.Subtotal,
			o.Discount,
			o.DeliveryFee,
			o.Tax,
			o.Total,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = wb.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s.xlsx", time.Now().Format("20060102")))
	if err := wb.Write(w); err != nil {
		log.Error().Err(err).Msg("write orders export")
	}
}
