package domain

import "fmt"

// Document type discriminators for the wire/storage shape.
const (
	DocTypeWorkCenter = "workCenter"
	DocTypeWorkOrder  = "workOrder"
)

// WorkCenterDocument is the wire shape of a work center. It round-trips
// losslessly with the WorkCenter entity.
type WorkCenterDocument struct {
	DocID   string         `json:"docId"`
	DocType string         `json:"docType"`
	Data    WorkCenterData `json:"data"`
}

type WorkCenterData struct {
	Name string `json:"name"`
}

func NewWorkCenterDocument(c WorkCenter) WorkCenterDocument {
	return WorkCenterDocument{
		DocID:   c.ID,
		DocType: DocTypeWorkCenter,
		Data:    WorkCenterData{Name: c.Name},
	}
}

// WorkCenter converts the document back to the entity, checking the type
// discriminator.
func (d WorkCenterDocument) WorkCenter() (WorkCenter, error) {
	if d.DocType != DocTypeWorkCenter {
		return WorkCenter{}, fmt.Errorf("work center document %q: unexpected docType %q", d.DocID, d.DocType)
	}
	return WorkCenter{ID: d.DocID, Name: d.Data.Name}, nil
}

// WorkOrderDocument is the wire shape of a work order. Dates cross this
// boundary as flat YYYY-MM-DD strings.
type WorkOrderDocument struct {
	DocID   string        `json:"docId"`
	DocType string        `json:"docType"`
	Data    WorkOrderData `json:"data"`
}

type WorkOrderData struct {
	Name         string          `json:"name"`
	WorkCenterID string          `json:"workCenterId"`
	Status       WorkOrderStatus `json:"status"`
	StartDate    Date            `json:"startDate"`
	EndDate      Date            `json:"endDate"`
}

func NewWorkOrderDocument(o WorkOrder) WorkOrderDocument {
	return WorkOrderDocument{
		DocID:   o.ID,
		DocType: DocTypeWorkOrder,
		Data: WorkOrderData{
			Name:         o.Name,
			WorkCenterID: o.WorkCenterID,
			Status:       o.Status,
			StartDate:    o.StartDate,
			EndDate:      o.EndDate,
		},
	}
}

// WorkOrder converts the document back to the entity, checking the type
// discriminator and the status value.
func (d WorkOrderDocument) WorkOrder() (WorkOrder, error) {
	if d.DocType != DocTypeWorkOrder {
		return WorkOrder{}, fmt.Errorf("work order document %q: unexpected docType %q", d.DocID, d.DocType)
	}
	if !d.Data.Status.Valid() {
		return WorkOrder{}, fmt.Errorf("work order document %q: unknown status %q", d.DocID, d.Data.Status)
	}
	return WorkOrder{
		ID:           d.DocID,
		WorkCenterID: d.Data.WorkCenterID,
		Status:       d.Data.Status,
		Name:         d.Data.Name,
		StartDate:    d.Data.StartDate,
		EndDate:      d.Data.EndDate,
	}, nil
}
