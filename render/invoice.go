package render

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        @page {
            size: Letter;
            margin: 14px;
        }
        body {
            font-family: Arial, sans-serif;
            font-size: 11px;
            color: black;
            margin: 0;
            padding: 14px;
        }
        .header {
            border-bottom: 2px solid black;
            padding-bottom: 5px;
            margin-bottom: 10px;
        }
        .header-top {
            display: flex;
            justify-content: space-between;
            width: 100%;
        }
        .logo-section { width: 25%; }
        .logo-section img { width: 120px; }
        .company-info {
            width: 50%;
            text-align: center;
        }
        .company-name { font-size: 24px; font-weight: bold; }
        .company-website { font-size: 12px; margin-top: 2px; }
        .company-address { font-size: 10px; margin-top: 2px; }
        .invoice-title {
            font-size: 32px;
            font-weight: bold;
            font-style: italic;
            letter-spacing: 4px;
            margin-top: 5px;
        }
        .invoice-info { width: 25%; text-align: right; }
        .barcode { font-size: 24px; font-weight: bold; margin-top: 5px; }
        .invoice-number { font-size: 11px; margin-top: 2px; }
        .meta-info {
            text-align: center;
            font-size: 10px;
            margin: 5px 0;
        }
        .customer-info-row {
            display: flex;
            justify-content: space-between;
            margin: 10px 0;
        }
        .customer-box {
            width: 48%;
            border: 1px solid black;
            padding: 8px;
            min-height: 80px;
            font-size: 10px;
        }
        .box-title { font-weight: bold; margin-bottom: 5px; }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 10px 0;
            font-size: 10px;
        }
        th, td {
            border: 1px solid black;
            padding: 4px;
            text-align: center;
        }
        th { font-weight: bold; }
        td.right { text-align: right; }
        td.center { text-align: center; }
        .totals-section {
            display: flex;
            justify-content: space-between;
            margin: 10px 0;
        }
        .totals-left { width: 55%; font-size: 10px; }
        .totals-right { width: 40%; }
        .totals-table td { border: none; padding: 2px; font-size: 10px; }
        .totals-table td:first-child { text-align: left; }
        .totals-table td:last-child { text-align: right; }
        .totals-table tr.bold td { font-weight: bold; }
        .footer {
            margin-top: 10px;
            font-size: 9px;
            text-align: justify;
            line-height: 1.3;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="header-top">
            <div class="logo-section">
                <img src="{{.Settings.LogoURL}}" alt="logo">
            </div>
            <div class="company-info">
                <div class="company-name">{{.Settings.CompanyName}}</div>
                <div class="company-website">{{.Settings.CompanyWebsite}}</div>
                <div class="company-address">{{.Settings.CompanyAddress}}</div>
                <div class="company-address">Tel: {{.Settings.CompanyPhone}}&nbsp;&nbsp;&nbsp;&nbsp;Fax:{{.Settings.CompanyFax}}</div>
                <div class="invoice-title">I N V O I C E</div>
            </div>
            <div class="invoice-info">
                <div class="barcode">*{{.Order.OrderNumber}}*</div>
                <div class="invoice-number">Invoice No.: {{.Order.OrderNumber}}</div>
                <div class="invoice-number">Date: {{.Order.InvoiceDate}}</div>
            </div>
        </div>
    </div>

    <div class="meta-info">
        <strong>Customer ID:</strong> {{.Order.CustomerID}}&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>Ship Date:</strong> {{.Order.ShipDate}}&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>Page:</strong> 1
    </div>

    <div class="customer-info-row">
        <div class="customer-box">
            <div class="box-title">Sold To:</div>
            <div>Attn: {{.Order.RecipientName}}</div>
            <div><strong>{{.Order.RecipientCompany}}</strong></div>
            <div>{{.Order.Address1}}{{if .Order.Address2}} {{.Order.Address2}}{{end}}</div>
            <div>{{.Order.City}}, {{.Order.State}} {{.Order.PostalCode}}</div>
            <div><br></div>
            <div>Tel: {{.Order.Phone}}&nbsp;&nbsp;&nbsp;&nbsp;Fax:{{.Order.Fax}}</div>
        </div>
        <div class="customer-box">
            <div class="box-title">Ship To:</div>
            <div>Attn: {{.Order.RecipientName}}</div>
            <div><strong>{{.Order.RecipientCompany}}</strong></div>
            <div>{{.Order.Address1}}{{if .Order.Address2}} {{.Order.Address2}}{{end}}</div>
            <div>{{.Order.City}}, {{.Order.State}} {{.Order.PostalCode}}, {{.Order.CountryCode}}</div>
            <div><br></div>
            <div>Tel: {{.Order.Phone}}</div>
        </div>
    </div>

    <table class="order-details">
        <thead>
            <tr>
                <th>S/O No.</th>
                <th>S/O Date</th>
                <th>P/O No.</th>
                <th>Sales Rep.</th>
                <th>Ship Via</th>
                <th>F.O.B.</th>
                <th>Terms</th>
                <th>Due Date</th>
            </tr>
        </thead>
        <tbody>
            <tr>
                <td>{{.Order.SONo}}</td>
                <td>{{.Order.SODate}}</td>
                <td>{{.Order.PONo}}</td>
                <td>{{.Order.SalesRep}}</td>
                <td>{{.Order.ShipVia}}</td>
                <td>{{.Settings.DefaultFOB}}</td>
                <td><strong>{{.Order.Terms}}</strong></td>
                <td>{{.Order.DatePaid}}</td>
            </tr>
        </tbody>
    </table>

    <table class="items-table">
        <thead>
            <tr>
                <th style="width: 5%;">Line#</th>
                <th style="width: 8%;">Order<br>Unit</th>
                <th style="width: 5%;">Unit</th>
                <th style="width: 5%;">Pack</th>
                <th style="width: 12%;">Item No.</th>
                <th style="width: 35%;">Description</th>
                <th style="width: 8%;">Ship<br>Qty (PC)</th>
                <th style="width: 8%;">Pricelist</th>
                <th style="width: 10%;">Ext. Amount</th>
                <th style="width: 8%;">Net Price</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.LineItems}}
            <tr>
                <td class="center">{{.LineNumber}}</td>
                <td class="right">{{.OrderUnit}}</td>
                <td class="center">{{.Unit}}</td>
                <td class="right">{{.Pack}}</td>
                <td>{{.ItemNo}}</td>
                <td>{{.Description}}</td>
                <td class="right">{{.ShipQty}}</td>
                <td class="right">{{pricelist .NetPrice}}</td>
                <td class="right">{{money3 .ExtendedPrice}}</td>
                <td class="right">{{money3 .NetPrice}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals-section">
        <div class="totals-left">
            <strong>Total BX:</strong>&nbsp;&nbsp;&nbsp;
            <strong>Total Wt:</strong> {{money2 .Order.TotalWT}}&nbsp;&nbsp;&nbsp;
            <strong>Unit PC:</strong>&nbsp;&nbsp;&nbsp;
            <strong>Vol.:</strong> {{money2 .Order.Vol}}&nbsp;&nbsp;&nbsp;
            <strong>Total CASE:</strong> {{blankInt .Order.TotalCase}}&nbsp;&nbsp;&nbsp;
            <strong>Total PC:</strong> {{blankInt .Order.TotalQty}}
        </div>
        <div class="totals-right">
            <table class="totals-table">
                <tr class="bold">
                    <td>Sales Amount:</td>
                    <td>{{money2 .Order.SalesAmount}}</td>
                </tr>
                <tr>
                    <td>Discount {{floorPct .Order.Discount}}%:</td>
                    <td>{{neg2 .Order.TotalDiscount}}</td>
                </tr>
                <tr>
                    <td>Tax %:</td>
                    <td>0.00</td>
                </tr>
                <tr>
                    <td>Shipping &amp; Handling:</td>
                    <td>{{money2 .Order.ShippingHandling}}</td>
                </tr>
                <tr class="bold">
                    <td>Total Amount:</td>
                    <td>{{money2 .Order.TotalDiscountedAmount}}</td>
                </tr>
                <tr>
                    <td>Payment:</td>
                    <td>0.00</td>
                </tr>
                <tr class="bold">
                    <td>Balance Due:</td>
                    <td>{{money2 .Order.TotalDiscountedAmount}}</td>
                </tr>
            </table>
        </div>
    </div>

    <div class="footer">{{.Settings.InvoiceFooter}}</div>
</body>
</html>
`
