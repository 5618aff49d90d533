package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA Election API",
        "description": "School representative election: candidatures, voting and results",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Candidates", "description": "Candidature submission and listing"},
        {"name": "Voting", "description": "Ballot casting and results"},
        {"name": "Admin", "description": "Election administration"}
    ],
    "paths": {
        "/candidates": {
            "get": {
                "tags": ["Candidates"],
                "summary": "List candidates",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["PENDENTE", "APROVADO", "REJEITADO"]},
                    {"name": "gradeYear", "in": "query", "type": "string"},
                    {"name": "classLetter", "in": "query", "type": "string", "enum": ["A", "B", "C"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Candidates"],
                "summary": "Submit a candidature",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error or candidatures closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/phase": {
            "get": {
                "tags": ["Voting"],
                "summary": "Current election phase",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/votes": {
            "post": {
                "tags": ["Voting"],
                "summary": "Cast a vote",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CastVoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Vote recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error or voting closed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Candidate unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Elector code already used", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results": {
            "get": {
                "tags": ["Voting"],
                "summary": "Ranked results",
                "parameters": [
                    {"name": "gradeYear", "in": "query", "type": "string"},
                    {"name": "classLetter", "in": "query", "type": "string", "enum": ["A", "B", "C"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "tags": ["Admin"],
                "summary": "Pending and approved candidates",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/candidates": {
            "get": {
                "tags": ["Admin"],
                "summary": "List candidates of any status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["PENDENTE", "APROVADO", "REJEITADO"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/candidates/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Approve or reject a candidate",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecideCandidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/results": {
            "get": {
                "tags": ["Admin"],
                "summary": "Ranked results",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "gradeYear", "in": "query", "type": "string"},
                    {"name": "classLetter", "in": "query", "type": "string", "enum": ["A", "B", "C"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/settings/phase": {
            "post": {
                "tags": ["Admin"],
                "summary": "Change the election phase",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetPhaseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/export/candidates.csv": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export candidates as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/admin/export/results.csv": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export results as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "gradeYear", "in": "query", "type": "string"},
                    {"name": "classLetter", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/admin/export/results.pdf": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export results as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "gradeYear", "in": "query", "type": "string"},
                    {"name": "classLetter", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF file"}
                }
            }
        },
        "/admin/reset": {
            "post": {
                "tags": ["Admin"],
                "summary": "Reset votes or the whole election",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "gradeYear": {"type": "string"},
                "classLetter": {"type": "string", "enum": ["A", "B", "C"]}
            },
            "required": ["name", "gradeYear", "classLetter"]
        },
        "DecideCandidateRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["APROVADO", "REJEITADO"]}
            },
            "required": ["status"]
        },
        "CastVoteRequest": {
            "type": "object",
            "properties": {
                "candidateId": {"type": "integer"},
                "electorCode": {"type": "string"}
            },
            "required": ["candidateId"]
        },
        "SetPhaseRequest": {
            "type": "object",
            "properties": {
                "phase": {"type": "string", "enum": ["CANDIDATURA", "VOTACAO", "ENCERRADA"]}
            },
            "required": ["phase"]
        },
        "ResetRequest": {
            "type": "object",
            "properties": {
                "scope": {"type": "string", "enum": ["VOTOS", "TUDO"]}
            },
            "required": ["scope"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            },
            "required": ["password"]
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
