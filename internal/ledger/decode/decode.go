package decode

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"

	"github.com/claudiorubilar/seguros/internal/ledger/parse"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
)

// Column names of the cartera export, in file order. Decoding is positional
// in the source but the dataframe lets us project by header name, which
// survives column reordering between export versions.
const (
	ColPolicyInternalID  = "Sseguro"
	ColPolicyNumber      = "Numero Poliza"
	ColItemNumber        = "Numero item"
	ColNetworkManager    = "Gerente Red"
	ColBranchCode        = "Codigo Sucursal"
	ColBranchName        = "Nombre Sucursal"
	ColBrokerRUT         = "Rut Corredor"
	ColBrokerName        = "Nombre Corredor"
	ColHolderRUT         = "Rut Contratante"
	ColHolderName        = "Nombre Contratante"
	ColInsuredRUT        = "Rut Asegurado"
	ColInsuredName       = "Nombre Asegurado"
	ColProduct           = "Nombre Producto"
	ColLineOfBusiness    = "Nombre Ramo"
	ColPremium           = "Valor Prima"
	ColPolicyStatus      = "Estado Poliza"
	ColIssueDate         = "Fecha Emision"
	ColStartDate         = "Fecha Inicio Vigencia"
	ColEndDate           = "Fecha Fin Vigencia"
	ColPaymentPlan       = "Plan Pago"
	ColInstallmentNumber = "Cuota"
	ColInstallmentCount  = "Cantidad Cuotas"
	ColDueDate           = "Fecha Vencimiento"
	ColCapital           = "Valor Capital"
	ColInterestRate      = "Tasa Interes"
	ColNetAmount         = "Cuota Neta"
	ColTaxableAmount     = "Monto Afecto"
	ColTax               = "Iva"
	ColExemptAmount      = "Monto Exento"
	ColGrossInterest     = "Interes Bruto"
	ColInterestTax       = "Iva Interes"
	ColTotalAmount       = "Valor Cuota"
	ColInstallmentStatus = "Estado Cuota"
	ColMandateFolio      = "Folio Mandato"
	ColMandateStatus     = "Estado Mandato"
	ColPaymentMethod     = "Forma de Pago"
	ColPaymentDate       = "Fecha Pago"
	ColCollectedUF       = "Recaudacion UF"
	ColAmountCLP         = "Cuota Pesos"
	ColCoInsurance       = "CoAsegurado"
	ColDirectPolicy      = "Poliza Squadra Directo"
	ColSourceCurrency    = "Moneda Origen"
)

// Record is one fully typed ledger row: a policy/installment pair plus the
// identities of everyone involved.
type Record struct {
	PolicyInternalID string
	PolicyNumber     string
	BranchCode       string
	BranchName       string
	BrokerRUT        string
	BrokerName       string
	HolderRUT        string
	HolderName       string
	InsuredRUT       string
	InsuredName      string
	Product          string
	LineOfBusiness   string
	Premium          float64
	PolicyStatus     types.PolicyStatus
	IssueDate        time.Time
	StartDate        time.Time
	EndDate          time.Time
	PaymentPlan      string

	InstallmentNumber int
	TotalInstallments int
	DueDate           time.Time
	NetAmount         float64
	TaxableAmount     float64
	Tax               float64
	ExemptAmount      float64
	GrossInterest     float64
	InterestTax       float64
	TotalAmount       float64
	InstallmentStatus types.InstallmentStatus
	MandateFolio      string
	MandateStatus     string
	PaymentMethod     string
	PaymentDate       time.Time
	CollectedUF       float64
	AmountCLP         float64
	CoInsurance       bool
	DirectPolicy      bool
	Currency          types.Currency
}

// ReadFrame reads a semicolon-delimited ledger into a dataframe. Rows whose
// field count does not match the header are dropped before the frame is
// built (gota aborts the whole read on ragged input, and brokerage exports
// routinely end in truncated rows); the dropped count is returned so the
// caller can log it. win1252 decodes legacy core-system exports.
func ReadFrame(r io.Reader, win1252 bool) (dataframe.DataFrame, int, error) {
	if win1252 {
		r = charmap.Windows1252.NewDecoder().Reader(r)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return dataframe.DataFrame{}, 0, fmt.Errorf("failed to read ledger: %w", err)
	}

	clean, dropped := sanitize(string(raw))
	if clean == "" {
		return dataframe.DataFrame{}, dropped, fmt.Errorf("ledger is empty")
	}

	df := dataframe.ReadCSV(strings.NewReader(clean),
		dataframe.WithDelimiter(';'),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, dropped, df.Err
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, dropped, fmt.Errorf("ledger has no data rows")
	}

	return df, dropped, nil
}

// sanitize keeps the header plus every line with the header's field count.
// The format carries no quoted fields, so a plain delimiter count is exact.
func sanitize(raw string) (string, int) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var header string
	var fields int
	kept := make([]string, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == "" {
			header = line
			fields = strings.Count(line, ";") + 1
			kept = append(kept, line)
			continue
		}
		if strings.Count(line, ";")+1 != fields {
			dropped++
			continue
		}
		kept = append(kept, line)
	}

	if header == "" {
		return "", dropped
	}
	return strings.Join(kept, "\n"), dropped
}

// Records projects every dataframe row into a typed Record, in row order.
func Records(df dataframe.DataFrame) []Record {
	records := make([]Record, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		records = append(records, FromFrame(df, i))
	}
	return records
}

// FromFrame decodes one row. Missing columns and unparseable values degrade
// to zero values through the parse package; this function never fails.
func FromFrame(df dataframe.DataFrame, rowIdx int) Record {
	return Record{
		PolicyInternalID: getStr(df, rowIdx, ColPolicyInternalID),
		PolicyNumber:     getStr(df, rowIdx, ColPolicyNumber),
		BranchCode:       getStr(df, rowIdx, ColBranchCode),
		BranchName:       getStr(df, rowIdx, ColBranchName),
		BrokerRUT:        getStr(df, rowIdx, ColBrokerRUT),
		BrokerName:       getStr(df, rowIdx, ColBrokerName),
		HolderRUT:        getStr(df, rowIdx, ColHolderRUT),
		HolderName:       getStr(df, rowIdx, ColHolderName),
		InsuredRUT:       getStr(df, rowIdx, ColInsuredRUT),
		InsuredName:      getStr(df, rowIdx, ColInsuredName),
		Product:          getStr(df, rowIdx, ColProduct),
		LineOfBusiness:   getStr(df, rowIdx, ColLineOfBusiness),
		Premium:          parse.ParseAmount(getStr(df, rowIdx, ColPremium)),
		PolicyStatus:     types.PolicyStatus(getStr(df, rowIdx, ColPolicyStatus)),
		IssueDate:        parse.ParseDate(getStr(df, rowIdx, ColIssueDate)),
		StartDate:        parse.ParseDate(getStr(df, rowIdx, ColStartDate)),
		EndDate:          parse.ParseDate(getStr(df, rowIdx, ColEndDate)),
		PaymentPlan:      getStr(df, rowIdx, ColPaymentPlan),

		InstallmentNumber: parse.ParseInt(getStr(df, rowIdx, ColInstallmentNumber)),
		TotalInstallments: parse.ParseInt(getStr(df, rowIdx, ColInstallmentCount)),
		DueDate:           parse.ParseDate(getStr(df, rowIdx, ColDueDate)),
		NetAmount:         parse.ParseAmount(getStr(df, rowIdx, ColNetAmount)),
		TaxableAmount:     parse.ParseAmount(getStr(df, rowIdx, ColTaxableAmount)),
		Tax:               parse.ParseAmount(getStr(df, rowIdx, ColTax)),
		ExemptAmount:      parse.ParseAmount(getStr(df, rowIdx, ColExemptAmount)),
		GrossInterest:     parse.ParseAmount(getStr(df, rowIdx, ColGrossInterest)),
		InterestTax:       parse.ParseAmount(getStr(df, rowIdx, ColInterestTax)),
		TotalAmount:       parse.ParseAmount(getStr(df, rowIdx, ColTotalAmount)),
		InstallmentStatus: types.InstallmentStatus(getStr(df, rowIdx, ColInstallmentStatus)),
		MandateFolio:      getStr(df, rowIdx, ColMandateFolio),
		MandateStatus:     getStr(df, rowIdx, ColMandateStatus),
		PaymentMethod:     getStr(df, rowIdx, ColPaymentMethod),
		PaymentDate:       parse.ParseDate(getStr(df, rowIdx, ColPaymentDate)),
		CollectedUF:       parse.ParseAmount(getStr(df, rowIdx, ColCollectedUF)),
		AmountCLP:         parse.ParseAmount(getStr(df, rowIdx, ColAmountCLP)),
		CoInsurance:       strings.EqualFold(getStr(df, rowIdx, ColCoInsurance), "COASEGURO"),
		DirectPolicy:      strings.EqualFold(getStr(df, rowIdx, ColDirectPolicy), "SI"),
		Currency:          types.Currency(getStr(df, rowIdx, ColSourceCurrency)),
	}
}

func getStr(df dataframe.DataFrame, rowIdx int, col string) string {
	if !hasColumn(df, col) {
		return ""
	}
	v := df.Col(col).Elem(rowIdx).String()
	if v == "NaN" {
		return ""
	}
	return strings.TrimSpace(v)
}

func hasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}
	return false
}
