package plkit

import "github.com/eubc/plkit-go/pkg/plkit/models"

// Names of the reconciliation checks.
const (
	CheckOrderCount = "order count"
	CheckBack       = "back personalisations"
	CheckSleeve     = "sleeve personalisations"
)

// CountInitialItems counts the ordered slots in the raw responses.
func CountInitialItems(t models.Table) (int, error) {
	return countInitial(t, models.Order.ItemCount)
}

// CountInitialBack counts the back names in the raw responses.
func CountInitialBack(t models.Table) (int, error) {
	return countInitial(t, models.Order.BackCount)
}

// CountInitialSleeve counts the sleeve initials in the raw responses.
func CountInitialSleeve(t models.Table) (int, error) {
	return countInitial(t, models.Order.SleeveCount)
}

func countInitial(t models.Table, count func(models.Order) int) (int, error) {
	orders, err := ReadOrders(t)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, o := range orders {
		n += count(o)
	}
	return n, nil
}

// CountProcessedItems sums the size buckets of every product row. The total
// and club rows are not product rows and never contribute.
func CountProcessedItems(r *models.ProductReport) int {
	return r.SizeTotal()
}

// CountProcessedBack counts the personalisation rows with a back name.
func CountProcessedBack(r *models.PersonalisationReport) int {
	return r.BackCount()
}

// CountProcessedSleeve counts the personalisation rows with sleeve initials.
func CountProcessedSleeve(r *models.PersonalisationReport) int {
	return r.SleeveCount()
}

// CheckOrderCountMatches fails when the product report does not hold every
// ordered slot exactly once.
func CheckOrderCountMatches(t models.Table, products *models.ProductReport) error {
	initial, err := CountInitialItems(t)
	if err != nil {
		return err
	}
	return compare(CheckOrderCount, initial, CountProcessedItems(products))
}

// CheckBackPersonalisations fails when a back name was lost or duplicated.
func CheckBackPersonalisations(t models.Table, personal *models.PersonalisationReport) error {
	initial, err := CountInitialBack(t)
	if err != nil {
		return err
	}
	return compare(CheckBack, initial, CountProcessedBack(personal))
}

// CheckSleevePersonalisations fails when sleeve initials were lost or duplicated.
func CheckSleevePersonalisations(t models.Table, personal *models.PersonalisationReport) error {
	initial, err := CountInitialSleeve(t)
	if err != nil {
		return err
	}
	return compare(CheckSleeve, initial, CountProcessedSleeve(personal))
}

// Reconcile runs all three checks and returns the first failure.
func Reconcile(t models.Table, products *models.ProductReport, personal *models.PersonalisationReport) error {
	if err := CheckOrderCountMatches(t, products); err != nil {
		return err
	}
	if err := CheckBackPersonalisations(t, personal); err != nil {
		return err
	}
	return CheckSleevePersonalisations(t, personal)
}

func compare(check string, initial, processed int) error {
	if initial != processed {
		return &ReconciliationMismatch{Check: check, Initial: initial, Processed: processed}
	}
	return nil
}
