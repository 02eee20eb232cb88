package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "DIU Admission API",
        "description": "Admission portal backend: catalog, waivers, recommendations, FAQ chat",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Programs and departments"},
        {"name": "Waivers", "description": "Scholarship waiver eligibility"},
        {"name": "Recommendations", "description": "Department recommendations from student profile"},
        {"name": "Chat", "description": "FAQ question answering"},
        {"name": "Applications", "description": "Admission application intake"},
        {"name": "Metrics", "description": "Runtime metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/api/v1/programs": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List programs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/programs/{code}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get a program by code",
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/departments": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List departments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/waivers/recommend": {
            "post": {
                "tags": ["Waivers"],
                "summary": "Evaluate waiver eligibility",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WaiverEvaluationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/recommendations": {
            "post": {
                "tags": ["Recommendations"],
                "summary": "Recommend departments for a student profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecommendationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Answer an FAQ question",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/applications": {
            "post": {
                "tags": ["Applications"],
                "summary": "Submit an admission application",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitApplicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/applications/{id}": {
            "get": {
                "tags": ["Applications"],
                "summary": "Get an application",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/applications/{id}/export": {
            "get": {
                "tags": ["Applications"],
                "summary": "Download an application summary",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/metrics/summary": {
            "get": {
                "tags": ["Metrics"],
                "summary": "Aggregated runtime metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "WaiverEvaluationRequest": {
            "type": "object",
            "properties": {
                "faculty": {"type": "string"},
                "ssc_gpa": {"type": "number"},
                "hsc_gpa": {"type": "number"},
                "is_new_student": {"type": "boolean"},
                "current_sgpa": {"type": "number"},
                "student_profile": {"$ref": "#/definitions/StudentProfile"}
            },
            "required": ["faculty"]
        },
        "StudentProfile": {
            "type": "object",
            "properties": {
                "family_income": {"type": "number"},
                "is_freedom_fighter_child": {"type": "boolean"},
                "is_diu_employee_relative": {"type": "boolean"},
                "has_sports_achievement": {"type": "boolean"},
                "has_diploma": {"type": "boolean"},
                "is_international_student": {"type": "boolean"},
                "group_admission": {"type": "boolean"}
            }
        },
        "RecommendationRequest": {
            "type": "object",
            "properties": {
                "interests": {"type": "array", "items": {"type": "string"}},
                "academic_background": {"type": "string"},
                "career_goals": {"type": "array", "items": {"type": "string"}},
                "ssc_gpa": {"type": "number"},
                "hsc_gpa": {"type": "number"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string"}
            },
            "required": ["message"]
        },
        "SubmitApplicationRequest": {
            "type": "object",
            "properties": {
                "student_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "dob": {"type": "string"},
                "father_name": {"type": "string"},
                "mother_name": {"type": "string"},
                "nid": {"type": "string"},
                "gender": {"type": "string"},
                "program_code": {"type": "string"},
                "ssc_gpa": {"type": "number"},
                "hsc_gpa": {"type": "number"},
                "ssc_year": {"type": "integer"},
                "hsc_year": {"type": "integer"},
                "ssc_board": {"type": "string"},
                "hsc_board": {"type": "string"},
                "ssc_group": {"type": "string"},
                "hsc_group": {"type": "string"},
                "family_income": {"type": "number"},
                "documents_submitted": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["student_name", "email", "phone", "program_code"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
