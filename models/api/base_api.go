package apimodels

type Response struct {
	Status  string      `json:"status"`            //résultat du traitement fail/success
	Message string      `json:"message,omitempty"` //message d'erreur
	Data    interface{} `json:"data,omitempty"`    //données de la réponse
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //pour les listes, nombre total d'enregistrements filtre compris
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Enregistrements par page
	Page  int `json:"page"`  // Page (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
