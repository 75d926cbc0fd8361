// Package docs registra la definición OpenAPI servida en /swagger/*.
// Generado a partir de las anotaciones de internal/dashboard (swag init -g cmd/api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/alerts": {
            "get": {
                "description": "Alertas calculadas sobre el historial reciente de todas las mascotas.",
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Alertas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.alertResponse"}}}
                }
            }
        },
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.animalResponse"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Crea el perfil con un id nuevo. name es obligatorio; birth_date en formato YYYY-MM-DD.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Alta de mascota",
                "parameters": [
                    {"description": "Perfil de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.createAnimalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dashboard.animalResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Perfil de mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.animalResponse"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "description": "Merge superficial: solo se modifican los campos enviados. birth_date y target_weight_kg aceptan null para limpiar.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Actualizar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.updateAnimalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.animalResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/charts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Series de tendencia (peso, comida, agua)",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true},
                    {"type": "string", "description": "7d | 30d | 90d | 1y. Por defecto 30d", "name": "range", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.chartsResponse"}},
                    "400": {"description": "invalid time range", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Métricas diarias de una mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true},
                    {"type": "string", "description": "7d | 30d | 90d | 1y. Por defecto 30d", "name": "range", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.metricResponse"}}},
                    "400": {"description": "invalid time range", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Un registro por mascota y día; no se pueden editar.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Registrar métrica diaria",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true},
                    {"description": "Registro del día", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.recordMetricRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dashboard.metricResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}},
                    "409": {"description": "daily metric already recorded", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}/profile": {
            "get": {
                "description": "Perfil, edad, último registro (ventana de 90 días), estado y alertas activas.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Ficha de mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.profileResponse"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/overview": {
            "get": {
                "description": "Una tarjeta por mascota con el registro de hoy (o el último de la semana) y su estado.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Vista general",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.cardResponse"}}}
                }
            }
        },
        "/resources": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resources"],
                "summary": "Recursos compartidos",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/resources.SharedResources"}}
                }
            },
            "put": {
                "description": "Reemplaza el snapshot completo. Niveles en 0-100.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["resources"],
                "summary": "Reemplazar recursos compartidos",
                "parameters": [
                    {"description": "Snapshot completo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/resources.SharedResources"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/resources.SharedResources"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "405": {"description": "shared resources backend is read-only", "schema": {"type": "string"}}
                }
            }
        },
        "/time-ranges": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Opciones del selector de rango",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.timeRangeResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "dashboard.alertResponse": {
            "type": "object",
            "properties": {
                "animal_id": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "metric": {"type": "string"},
                "severity": {"type": "string", "enum": ["warning", "critical"]},
                "threshold": {"type": "number"},
                "type": {"type": "string", "enum": ["weight_change", "low_food", "low_water"]},
                "value": {"type": "number"}
            }
        },
        "dashboard.animalResponse": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string"},
                "breed": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"},
                "target_weight_kg": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        },
        "dashboard.cardResponse": {
            "type": "object",
            "properties": {
                "animal": {"$ref": "#/definitions/dashboard.animalResponse"},
                "assessment": {"$ref": "#/definitions/health.Assessment"},
                "metric": {"$ref": "#/definitions/dashboard.metricResponse"}
            }
        },
        "dashboard.chartsResponse": {
            "type": "object",
            "properties": {
                "animal_id": {"type": "string"},
                "food": {"type": "array", "items": {"$ref": "#/definitions/metrics.ChartPoint"}},
                "range": {"type": "string"},
                "target_weight_kg": {"type": "number"},
                "water": {"type": "array", "items": {"$ref": "#/definitions/metrics.ChartPoint"}},
                "weight": {"type": "array", "items": {"$ref": "#/definitions/metrics.ChartPoint"}},
                "weight_domain": {"$ref": "#/definitions/metrics.Domain"}
            }
        },
        "dashboard.createAnimalRequest": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string"},
                "breed": {"type": "string"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"},
                "target_weight_kg": {"type": "number"}
            }
        },
        "dashboard.metricResponse": {
            "type": "object",
            "properties": {
                "animal_id": {"type": "string"},
                "date": {"type": "string"},
                "food_g": {"type": "number"},
                "water_ml": {"type": "number"},
                "weight_kg": {"type": "number"}
            }
        },
        "dashboard.profileResponse": {
            "type": "object",
            "properties": {
                "age_years": {"type": "integer"},
                "alerts": {"type": "array", "items": {"$ref": "#/definitions/dashboard.alertResponse"}},
                "animal": {"$ref": "#/definitions/dashboard.animalResponse"},
                "assessment": {"$ref": "#/definitions/health.Assessment"},
                "latest_metric": {"$ref": "#/definitions/dashboard.metricResponse"}
            }
        },
        "dashboard.recordMetricRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "food_g": {"type": "number"},
                "water_ml": {"type": "number"},
                "weight_kg": {"type": "number"}
            }
        },
        "dashboard.timeRangeResponse": {
            "type": "object",
            "properties": {
                "days": {"type": "integer"},
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "dashboard.updateAnimalRequest": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string"},
                "breed": {"type": "string"},
                "name": {"type": "string"},
                "photo_url": {"type": "string"},
                "target_weight_kg": {"type": "number"}
            }
        },
        "health.Assessment": {
            "type": "object",
            "properties": {
                "food": {"type": "string", "enum": ["normal", "warning", "critical"]},
                "has_warning": {"type": "boolean"},
                "water": {"type": "string", "enum": ["normal", "warning", "critical"]},
                "weight": {"type": "string", "enum": ["normal", "warning", "critical"]}
            }
        },
        "metrics.ChartPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "display_date": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "metrics.Domain": {
            "type": "object",
            "properties": {
                "max": {"type": "number"},
                "min": {"type": "number"}
            }
        },
        "resources.FoodBowl": {
            "type": "object",
            "properties": {
                "animal_id": {"type": "string"},
                "capacity_g": {"type": "number"},
                "current_level": {"type": "number"}
            }
        },
        "resources.LitterTray": {
            "type": "object",
            "properties": {
                "hopper_level": {"type": "number"},
                "waste_level": {"type": "number"}
            }
        },
        "resources.SharedResources": {
            "type": "object",
            "properties": {
                "food_bowls": {"type": "array", "items": {"$ref": "#/definitions/resources.FoodBowl"}},
                "litter_tray": {"$ref": "#/definitions/resources.LitterTray"},
                "water_fountain": {"$ref": "#/definitions/resources.WaterFountain"}
            }
        },
        "resources.WaterFountain": {
            "type": "object",
            "properties": {
                "capacity_ml": {"type": "number"},
                "current_level": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Health Dashboard API",
	Description:      "Métricas diarias (peso, comida, agua), estado y alertas de las mascotas del hogar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
