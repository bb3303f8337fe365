// Package http provides Laravel-style request, response and view helpers.
//
// # Request
//
// Request wraps *http.Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Named fields as strings, from JSON or form bodies alike
//	in, err := req.Fields("name", "age")
//
//	req.Query("created")
//	req.IsJSON()   // Accept: application/json OR Content-Type: application/json
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Created(data)             // 201 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.ValidationError(errs)     // 422 {"errors": {"field": ["msg"]}}
//	res.SeeOther("/")             // 303
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(viewsFS, ".html", nil)
//	engine.View(w, http.StatusOK, "form", data)
package http
