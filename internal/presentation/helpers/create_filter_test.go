package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestGetRecipeFilterByQueriesDefaults(t *testing.T) {
	validate := validator.New()
	queries := url.Values{}

	filter, errResponse := GetRecipeFilterByQueries(&queries, validate)
	if errResponse != nil {
		t.Fatalf("respuesta de error inesperada: %+v", errResponse)
	}

	if !filter.SoloActivas {
		t.Error("sin incluirInactivas el filtro debe limitarse a recetas activas")
	}
	if filter.Limit != 20 || filter.Offset != 0 {
		t.Errorf("Limit = %d, Offset = %d; want 20 y 0", filter.Limit, filter.Offset)
	}
}

func TestGetRecipeFilterByQueriesPagination(t *testing.T) {
	validate := validator.New()
	queries := url.Values{
		"page":             []string{"3"},
		"limit":            []string{"10"},
		"categoria":        []string{"sopa"},
		"incluirInactivas": []string{"true"},
	}

	filter, errResponse := GetRecipeFilterByQueries(&queries, validate)
	if errResponse != nil {
		t.Fatalf("respuesta de error inesperada: %+v", errResponse)
	}

	if filter.Offset != 20 || filter.Limit != 10 {
		t.Errorf("Offset = %d, Limit = %d; want 20 y 10", filter.Offset, filter.Limit)
	}
	if filter.Categoria != "sopa" {
		t.Errorf("Categoria = %q", filter.Categoria)
	}
	if filter.SoloActivas {
		t.Error("incluirInactivas=true debe apagar SoloActivas")
	}
}

func TestGetRecipeFilterByQueriesRejectsBadCategory(t *testing.T) {
	validate := validator.New()
	queries := url.Values{"categoria": []string{"desconocida"}}

	filter, errResponse := GetRecipeFilterByQueries(&queries, validate)
	if filter != nil {
		t.Errorf("filter = %+v, want nil", filter)
	}
	if errResponse == nil || errResponse.StatusCode != http.StatusBadRequest {
		t.Errorf("errResponse = %+v, want 400", errResponse)
	}
}

func TestGetRecipeFilterByQueriesRejectsHugeLimit(t *testing.T) {
	validate := validator.New()
	queries := url.Values{"limit": []string{"5000"}}

	_, errResponse := GetRecipeFilterByQueries(&queries, validate)
	if errResponse == nil || errResponse.StatusCode != http.StatusBadRequest {
		t.Errorf("errResponse = %+v, want 400", errResponse)
	}
}

func TestGetPlanFilterByQueries(t *testing.T) {
	validate := validator.New()
	queries := url.Values{
		"clienteId":   []string{"64f0c2a1b3d4e5f601234567"},
		"estado":      []string{"activo"},
		"esPlantilla": []string{"false"},
	}

	filter, errResponse := GetPlanFilterByQueries(&queries, validate)
	if errResponse != nil {
		t.Fatalf("respuesta de error inesperada: %+v", errResponse)
	}

	if filter.ClienteId == nil || filter.ClienteId.Hex() != "64f0c2a1b3d4e5f601234567" {
		t.Errorf("ClienteId = %v", filter.ClienteId)
	}
	if filter.Estado != "activo" {
		t.Errorf("Estado = %q", filter.Estado)
	}
	if filter.EsPlantilla == nil || *filter.EsPlantilla {
		t.Errorf("EsPlantilla = %v, want punto a false", filter.EsPlantilla)
	}
}

func TestGetPlanFilterByQueriesOmitsUnsetTemplateFlag(t *testing.T) {
	validate := validator.New()
	queries := url.Values{}

	filter, errResponse := GetPlanFilterByQueries(&queries, validate)
	if errResponse != nil {
		t.Fatalf("respuesta de error inesperada: %+v", errResponse)
	}
	if filter.EsPlantilla != nil {
		t.Error("sin esPlantilla en la query el filtro no debe fijarlo")
	}
	if filter.ClienteId != nil {
		t.Error("sin clienteId en la query el filtro no debe fijarlo")
	}
}

func TestGetPlanFilterByQueriesRejectsBadClientId(t *testing.T) {
	validate := validator.New()
	queries := url.Values{"clienteId": []string{"no-es-hex"}}

	_, errResponse := GetPlanFilterByQueries(&queries, validate)
	if errResponse == nil || errResponse.StatusCode != http.StatusBadRequest {
		t.Errorf("errResponse = %+v, want 400", errResponse)
	}
}

func TestGetClientFilterByQueries(t *testing.T) {
	validate := validator.New()
	queries := url.Values{
		"search": []string{"garcía"},
		"page":   []string{"2"},
		"limit":  []string{"5"},
	}

	filter, errResponse := GetClientFilterByQueries(&queries, validate)
	if errResponse != nil {
		t.Fatalf("respuesta de error inesperada: %+v", errResponse)
	}
	if filter.Search != "garcía" || filter.Offset != 5 || filter.Limit != 5 {
		t.Errorf("filter = %+v", filter)
	}
}
