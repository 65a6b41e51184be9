package invoice

const classicTemplate = `================================================================
{{.CompanyName | upper}}
{{.CompanyTagline}}
================================================================

INVOICE #{{.Number}}
Date: {{.Date}}

BILLED TO
  {{.ClientName}}
{{- if .ClientPhone}}
  {{.ClientPhone}}
{{- end}}
{{- if .Venue}}
  {{.Venue}}
{{- end}}

EVENT
  {{.EventTitle}}
  {{.EventDate}}

----------------------------------------------------------------
Photography Services
  {{.Description}}
----------------------------------------------------------------
Subtotal          BDT {{.Package}}
Paid Advance    - BDT {{.Advance}}
BALANCE DUE       BDT {{.Balance}}
{{- if .Paid}}

*** PAID ***
{{- end}}

Thank you for your business!
{{- if .CompanyContact}}
{{.CompanyContact}}
{{- end}}
`

const minimalTemplate = `{{.CompanyName}}
Invoice #{{.Number}}  {{.Date}}

{{.ClientName}}
{{.EventTitle}}, {{.EventDate}}

Package   BDT {{.Package}}
Advance   BDT {{.Advance}}
Balance   BDT {{.Balance}}
{{- if .Paid}}
Status    PAID
{{- end}}
`
