// Package console — интерактивное меню магазина поверх stdin/stdout.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
	"github.com/vladislavdragonenkov/shopcart/internal/metrics"
	"github.com/vladislavdragonenkov/shopcart/internal/service/cart"
)

// Пункты меню.
const (
	choiceDisplay  = 1
	choiceAdd      = 2
	choiceView     = 3
	choiceModify   = 4
	choiceCheckout = 5
	choiceExit     = 6
)

const menu = `
1. Display Products
2. Add to Cart
3. View Cart
4. Modify Cart
5. Checkout
6. Exit
Enter your choice: `

// Controller обслуживает цикл меню для одного пользователя.
type Controller struct {
	in      *tokenReader
	out     io.Writer
	catalog domain.CatalogRepository
	cart    *cart.Service
	metrics *metrics.SessionMetrics
	logger  *log.Entry
}

// NewController создаёт контроллер. sessionMetrics может быть nil.
func NewController(
	in io.Reader,
	out io.Writer,
	catalog domain.CatalogRepository,
	cartSvc *cart.Service,
	sessionMetrics *metrics.SessionMetrics,
	logger *log.Entry,
) *Controller {
	if logger == nil {
		logger = log.WithField("component", "console")
	}
	return &Controller{
		in:      newTokenReader(in),
		out:     out,
		catalog: catalog,
		cart:    cartSvc,
		metrics: sessionMetrics,
		logger:  logger,
	}
}

// Run крутит меню до выбора пункта 6 или конца ввода.
// Отмена контекста прерывает и ожидание ввода; Run тогда возвращает ctx.Err().
func (c *Controller) Run(ctx context.Context) error {
	c.printf("Welcome %s to the Online Shopping Cart System\n", c.cart.User().Name)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("%s", menu)
		choice, err := c.in.nextInt(ctx)
		if errors.Is(err, io.EOF) {
			c.logger.Info("input closed, leaving menu")
			return nil
		}
		if isCanceled(err) {
			return err
		}
		if err != nil {
			c.printf("Invalid input. Please enter a number.\n")
			c.recordInvalid(metrics.ReasonMenuChoice)
			continue
		}

		switch choice {
		case choiceDisplay:
			c.displayProducts()
		case choiceAdd:
			err = c.addToCart(ctx)
		case choiceView:
			err = c.viewCart()
		case choiceModify:
			err = c.modifyCart(ctx)
		case choiceCheckout:
			err = c.checkout(ctx)
		case choiceExit:
			c.printf("Exiting the system. Thank you for shopping!\n")
			return nil
		default:
			c.printf("Invalid choice. Please try again.\n")
			c.recordInvalid(metrics.ReasonMenuChoice)
		}

		if errors.Is(err, io.EOF) {
			c.logger.Info("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Controller) displayProducts() {
	c.printf("\nAvailable Products:\n")
	for _, p := range c.catalog.List() {
		c.printf("%d. Name: %s, Price: %s\n", p.ID, p.Name, domain.FormatMoney(p.Price))
	}
}

func (c *Controller) addToCart(ctx context.Context) error {
	c.displayProducts()

	c.printf("Enter the Product ID to add to cart: ")
	productID, err := c.in.nextInt(ctx)
	if err != nil && !errors.Is(err, errNotNumber) {
		return err
	}
	if err != nil || productID < 1 || productID > c.catalog.Len() {
		c.in.discardLine()
		c.printf("Invalid Product ID!\n")
		c.recordInvalid(metrics.ReasonProductID)
		return nil
	}

	c.printf("Enter quantity: ")
	qty, err := c.in.nextInt(ctx)
	if err != nil && !errors.Is(err, errNotNumber) {
		return err
	}
	if err != nil || qty <= 0 {
		c.in.discardLine()
		c.printf("Quantity must be greater than zero.\n")
		c.recordInvalid(metrics.ReasonQuantity)
		return nil
	}

	product, err := c.cart.AddItem(productID, qty)
	if errors.Is(err, domain.ErrQuantityInvalid) {
		c.printf("Quantity must be greater than zero.\n")
		c.recordInvalid(metrics.ReasonQuantity)
		return nil
	}
	if domain.IsInputError(err) {
		c.printf("Invalid Product ID!\n")
		c.recordInvalid(metrics.ReasonProductID)
		return nil
	}
	if err != nil {
		return err
	}
	c.printf("%s has been added to the cart.\n", product.Name)
	return nil
}

func (c *Controller) viewCart() error {
	view, err := c.cart.View()
	if err != nil {
		return err
	}
	c.renderCart(view)
	return nil
}

func (c *Controller) renderCart(view cart.View) {
	if view.Empty() {
		c.printf("Your cart is empty.\n")
		return
	}

	c.printf("\nYour Cart:\n")
	for _, line := range view.Lines {
		c.printf("%d. %s - Quantity: %d, Price: %s\n",
			line.Position, line.Name, line.Quantity, domain.FormatMoney(line.LineTotal))
	}
	c.printf("Total: %s\n", domain.FormatMoney(view.Total))
}

func (c *Controller) modifyCart(ctx context.Context) error {
	view, err := c.cart.View()
	if err != nil {
		return err
	}
	if view.Empty() {
		c.printf("Your cart is empty. Nothing to modify.\n")
		return nil
	}
	c.renderCart(view)

	size := len(view.Lines)
	c.printf("Enter the item number to modify (1 to %d): ", size)
	position, err := c.in.nextInt(ctx)
	if err != nil && !errors.Is(err, errNotNumber) {
		return err
	}
	if err != nil || position < 1 || position > size {
		c.in.discardLine()
		c.printf("Invalid item number!\n")
		c.recordInvalid(metrics.ReasonItemNumber)
		return nil
	}

	c.printf("Enter new quantity (0 to remove item): ")
	qty, err := c.in.nextInt(ctx)
	if err != nil && !errors.Is(err, errNotNumber) {
		return err
	}
	if err != nil || qty < 0 {
		c.in.discardLine()
		c.printf("Invalid quantity!\n")
		c.recordInvalid(metrics.ReasonQuantity)
		return nil
	}

	removed, err := c.cart.Modify(position, qty)
	if errors.Is(err, domain.ErrItemPositionInvalid) {
		c.printf("Invalid item number!\n")
		c.recordInvalid(metrics.ReasonItemNumber)
		return nil
	}
	if domain.IsInputError(err) {
		c.printf("Invalid quantity!\n")
		c.recordInvalid(metrics.ReasonQuantity)
		return nil
	}
	if err != nil {
		return err
	}
	if removed {
		c.printf("Item removed from the cart.\n")
	} else {
		c.printf("Item quantity updated.\n")
	}
	return nil
}

func (c *Controller) checkout(ctx context.Context) error {
	total, err := c.cart.Total()
	if err != nil {
		return err
	}
	if c.cart.Len() == 0 {
		c.printf("Your cart is empty.\n")
		return nil
	}

	amount := domain.FormatMoney(total)
	c.printf("Proceeding to checkout. Total amount: %s\n", amount)
	c.printf("Enter your card number for payment: ")
	paymentRef, err := c.in.next(ctx)
	if err != nil {
		return err
	}
	c.printf("Processing payment of %s...\n", amount)

	receipt, err := c.cart.Checkout(ctx, paymentRef)
	if err != nil {
		c.logger.WithError(err).Warn("checkout failed")
		c.printf("Payment failed: %v\n", err)
		return nil
	}

	c.printf("Payment successful!\n")
	c.printf("Order confirmed! Thank you for shopping.\n")
	c.printf("Order number: %s\n", receipt.ID)
	return nil
}

func (c *Controller) recordInvalid(reason string) {
	if c.metrics != nil {
		c.metrics.RecordInvalidInput(reason)
	}
}

func (c *Controller) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
