// Package controller generates a read-only Web API controller and its model
// class from a YAML manifest.
//
// A manifest names the model, its fields and a list of records. The
// generated controller serves the records from memory:
//
//	namespace: CodeFactoryDemo.Controllers
//	imports: [System.Collections.Generic, System.Linq, System.Web.Http]
//	controller: ProductsController
//	base: ApiController
//	model:
//	  name: Product
//	  key: Id
//	  fields:
//	    - {name: Id, type: int}
//	    - {name: Price, type: decimal}
//	records:
//	  - {Id: 1, Price: 1}
//	  - {Id: "= index + 1", Price: "= 3.5 + 0.25"}
//
// A record value that is a string starting with "=" is an expr-lang
// expression. It is evaluated with index (the zero-based record number) and
// the record's fields declared before it in scope. A leading "==" stands for
// a literal "=".
//
// Decimal values are kept exact. YAML reads an unquoted 16.99 as a float, so
// quote decimals that need more digits than a float64 holds:
//
//	records:
//	  - {Id: 1, Price: "12345678901234567.89"}
package controller
