// Package docs registers the Swagger document served at /swagger.
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
        "/cart": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Cart"], "summary": "Get cart", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Cart"], "summary": "Clear cart", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}}
        },
        "/cart/items": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Cart"], "summary": "Add item", "parameters": [{"description": "Item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddItemRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/cart/items/{id}": {
            "patch": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Cart"], "summary": "Update quantity", "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}, {"description": "Quantity", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateQuantityRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Cart"], "summary": "Remove item", "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}}
        },
        "/cart/toggle": {
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Cart"], "summary": "Toggle cart drawer", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}}
        },
        "/cart/open": {
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Cart"], "summary": "Set cart drawer visibility", "parameters": [{"description": "Visibility", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SetOpenRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}}
        },
        "/checkout": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Checkout"], "summary": "Checkout status", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}}},
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Checkout"], "summary": "Begin checkout", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Checkout"], "summary": "Cancel checkout", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/checkout/submit": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["Checkout"], "summary": "Submit checkout", "parameters": [{"description": "Shipping and payment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CheckoutRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/checkout/retry": {
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Checkout"], "summary": "Retry checkout", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/orders": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Orders"], "summary": "Order history", "parameters": [{"type": "integer", "description": "Page number", "name": "page", "in": "query"}, {"type": "integer", "description": "Items per page", "name": "limit", "in": "query"}, {"type": "string", "description": "Filter by status", "name": "status", "in": "query"}, {"type": "string", "description": "Search by order id", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HATEOASResponse"}}}}
        },
        "/orders/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["Orders"], "summary": "Get order by ID", "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "models.AddItemRequest": {"type": "object", "required": ["id", "maxQuantity", "name"], "properties": {"category": {"type": "string"}, "id": {"type": "string"}, "image": {"type": "string"}, "maxQuantity": {"type": "integer", "maximum": 10000, "minimum": 1}, "name": {"type": "string"}, "price": {"type": "integer", "minimum": 0}, "quantity": {"type": "integer", "maximum": 10000, "minimum": 0}, "vendor": {"type": "string"}}},
        "models.UpdateQuantityRequest": {"type": "object", "required": ["quantity"], "properties": {"quantity": {"type": "integer", "maximum": 10000}}},
        "models.SetOpenRequest": {"type": "object", "required": ["open"], "properties": {"open": {"type": "boolean"}}},
        "models.ShippingInfo": {"type": "object", "properties": {"address": {"type": "string"}, "city": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "phone": {"type": "string"}, "state": {"type": "string"}}},
        "models.CheckoutRequest": {"type": "object", "properties": {"deliveryNotes": {"type": "string"}, "paymentMethod": {"type": "string", "enum": ["card", "bank", "delivery", "paystack"]}, "shippingInfo": {"$ref": "#/definitions/models.ShippingInfo"}}},
        "models.FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "models.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "fields": {"type": "array", "items": {"$ref": "#/definitions/models.FieldError"}}, "message": {"type": "string"}, "success": {"type": "boolean"}}},
        "models.Response": {"type": "object", "properties": {"data": {}, "message": {"type": "string"}, "success": {"type": "boolean"}}},
        "models.PaginationMeta": {"type": "object", "properties": {"limit": {"type": "integer"}, "page": {"type": "integer"}, "total_items": {"type": "integer"}, "total_pages": {"type": "integer"}}},
        "models.PaginationLinks": {"type": "object", "properties": {"next": {"type": "string"}, "prev": {"type": "string"}, "self": {"type": "string"}}},
        "models.HATEOASResponse": {"type": "object", "properties": {"data": {}, "links": {"$ref": "#/definitions/models.PaginationLinks"}, "message": {"type": "string"}, "meta": {"$ref": "#/definitions/models.PaginationMeta"}, "success": {"type": "boolean"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront Cart API",
	Description:      "Cart and checkout API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
